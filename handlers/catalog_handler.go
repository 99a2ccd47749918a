package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"gtm_portal/models"
	"gtm_portal/utils"
)

// 非facet的查询参数
const (
	paramQuery = "q"
	paramSort  = "sort"
)

// parseCatalogQuery 解析 ?q=&sort=&<facet>=v1,v2，同一facet可重复出现
func parseCatalogQuery(values url.Values) models.CatalogQuery {
	q := models.CatalogQuery{
		Text:       values.Get(paramQuery),
		Sort:       values.Get(paramSort),
		Selections: models.FacetSelection{},
	}
	for key, raw := range values {
		if key == paramQuery || key == paramSort {
			continue
		}
		var selected []string
		for _, v := range raw {
			selected = append(selected, strings.Split(v, ",")...)
		}
		if selected = utils.DeduplicateSlice(selected); len(selected) > 0 {
			q.Selections[key] = selected
		}
	}
	return q
}

// TaxonomyHandler godoc
// @Summary 获取分类体系
// @Description 行业、业务场景两级分类以及角色、产品列表
// @Tags 分类
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/taxonomy [get]
func TaxonomyHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	utils.WriteSuccessResponse(w, d.Taxonomy)
}

// ListCatalogHandler godoc
// @Summary 列表页查询
// @Description 按关键词、facet和排序键筛选某类内容。facet参数名即维度名，多个值用逗号分隔
// @Tags 内容
// @Produce json
// @Param kind path string true "内容类型" Enums(solution, case, app, resource, review, client)
// @Param q query string false "关键词"
// @Param sort query string false "排序键，未知值使用页面默认排序"
// @Param industry query string false "行业，如 大制造,金融"
// @Success 200 {object} models.CatalogPageResponse "成功"
// @Failure 200 {object} models.APIResponse "未知类型"
// @Router /api/catalog/{kind} [get]
func ListCatalogHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	kind, err := models.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	page, err := d.Catalog.List(r.Context(), kind, parseCatalogQuery(r.URL.Query()))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, page)
}

// GetCatalogItemHandler godoc
// @Summary 获取单个条目
// @Tags 内容
// @Produce json
// @Param kind path string true "内容类型"
// @Param id path string true "条目ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 200 {object} models.APIResponse "条目不存在"
// @Router /api/catalog/{kind}/{id} [get]
func GetCatalogItemHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	kind, err := models.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	item, err := d.Catalog.Get(r.Context(), kind, chi.URLParam(r, "id"))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, item)
}

// EngageHandler godoc
// @Summary 记录互动
// @Description 点赞、收藏、评论、浏览、下载计数加一，返回更新后的条目
// @Tags 内容
// @Accept json
// @Produce json
// @Param kind path string true "内容类型"
// @Param id path string true "条目ID"
// @Param body body models.EngageRequest true "互动类型"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 200 {object} models.APIResponse "参数错误"
// @Router /api/catalog/{kind}/{id}/engage [post]
func EngageHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	kind, err := models.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	var req models.EngageRequest
	if !utils.DecodeJSONBody(w, r, d.Validator, &req) {
		return
	}

	item, err := d.Catalog.Engage(r.Context(), kind, chi.URLParam(r, "id"), req.Metric)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, item)
}

// BattlemapHandler godoc
// @Summary 作战地图
// @Description 客户按行业一级、二级分组，只返回非空分组
// @Tags 内容
// @Produce json
// @Param q query string false "关键词"
// @Param sort query string false "排序键：value 或 latest"
// @Param industry query string false "行业"
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/battlemap [get]
func BattlemapHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	bm, err := d.Catalog.Battlemap(r.Context(), parseCatalogQuery(r.URL.Query()))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, bm)
}
