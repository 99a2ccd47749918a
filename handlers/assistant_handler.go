package handlers

import (
	"errors"
	"net/http"

	"gtm_portal/models"
	"gtm_portal/services"
	"gtm_portal/utils"
)

// ChatHandler godoc
// @Summary AI助手对话
// @Description 发送完整对话历史和新消息。模型输出无法解析时返回纯文本回复，不会报错
// @Tags AI助手
// @Accept json
// @Produce json
// @Param body body models.ChatRequest true "消息和历史"
// @Success 200 {object} models.AssistantReplyResponse "成功"
// @Failure 200 {object} models.APIResponse "参数错误"
// @Failure 429 {object} models.APIResponse "请求过于频繁"
// @Router /api/assistant/chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	var req models.ChatRequest
	if !utils.DecodeJSONBody(w, r, d.Validator, &req) {
		return
	}

	reply := d.Assistant.Chat(r.Context(), req.Message, req.History)
	utils.WriteSuccessResponse(w, reply)
}

// ImportHandler godoc
// @Summary 智能导入
// @Description 把粘贴的原始资料整理为文章草稿，分类限定在分类体系内
// @Tags AI助手
// @Accept json
// @Produce json
// @Param body body models.TextRequest true "原始资料"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 200 {object} models.APIResponse "助手不可用"
// @Router /api/assistant/import [post]
func ImportHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	var req models.TextRequest
	if !utils.DecodeJSONBody(w, r, d.Validator, &req) {
		return
	}

	draft, err := d.Assistant.Import(r.Context(), req.Text)
	if err != nil {
		writeAssistantError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, draft)
}

// PolishHandler godoc
// @Summary 文本润色
// @Tags AI助手
// @Accept json
// @Produce json
// @Param body body models.TextRequest true "待润色文本"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 200 {object} models.APIResponse "助手不可用"
// @Router /api/assistant/polish [post]
func PolishHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	var req models.TextRequest
	if !utils.DecodeJSONBody(w, r, d.Validator, &req) {
		return
	}

	text, err := d.Assistant.Polish(r.Context(), req.Text)
	if err != nil {
		writeAssistantError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{"text": text})
}

// ChartHandler godoc
// @Summary 渲染图表
// @Description 把助手返回的 chartData 渲染为PNG
// @Tags AI助手
// @Accept json
// @Produce png
// @Param body body models.ChartSpec true "图表数据"
// @Success 200 {file} binary "PNG图片"
// @Failure 200 {object} models.APIResponse "参数错误"
// @Router /api/assistant/chart [post]
func ChartHandler(w http.ResponseWriter, r *http.Request, d Deps) {
	var spec models.ChartSpec
	if !utils.DecodeJSONBody(w, r, d.Validator, &spec) {
		return
	}

	png, err := d.Charts.Render(spec)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// writeAssistantError 不可用和失败都使用固定提示，不透出底层错误
func writeAssistantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrAssistantUnavailable):
		utils.WriteCustomErrorResponse(w, models.CodeAssistantUnavailable, services.UnavailableText, map[string]interface{}{})
	case errors.Is(err, models.ErrAssistantFailed):
		utils.WriteCustomErrorResponse(w, models.CodeThirdPartyAPIError, services.FailedText, map[string]interface{}{})
	default:
		utils.HandleServiceError(w, err)
	}
}
