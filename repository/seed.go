package repository

import "gtm_portal/models"

func facets(pairs ...any) map[string][]string {
	out := make(map[string][]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i].(string)] = pairs[i+1].([]string)
	}
	return out
}

// SeedItems 内置样例数据，catalog.source=memory 时使用
func SeedItems() map[models.Kind][]models.CatalogItem {
	return map[models.Kind][]models.CatalogItem{
		models.KindSolution: {
			{
				ID: "sol-001", Kind: models.KindSolution,
				Title:   "汽车产业链质量追溯解决方案",
				Summary: "基于大模型的零部件缺陷识别与质量追溯，打通主机厂与供应商数据。",
				Facets: facets("industry", []string{"大制造", "汽车产业链"}, "scene", []string{"质量检测"},
					"role", []string{"售前", "交付"}, "product", []string{"大模型平台", "数据中台"}),
				Metrics: map[string]int{"likes": 42, "comments": 8, "favorites": 15, "views": 860},
				Date:    "2025-11-20",
			},
			{
				ID: "sol-002", Kind: models.KindSolution,
				Title:   "银行智能客服与坐席助手",
				Summary: "面向零售银行的多轮对话客服，坐席实时话术推荐与工单摘要。",
				Facets: facets("industry", []string{"金融", "银行"}, "scene", []string{"智能客服"},
					"role", []string{"销售", "售前"}, "product", []string{"智能体平台"}),
				Metrics: map[string]int{"likes": 55, "comments": 3, "favorites": 20, "views": 1200},
				Date:    "2025-12-02",
			},
			{
				ID: "sol-003", Kind: models.KindSolution,
				Title:   "企业知识库通用方案",
				Summary: "跨部门文档统一接入、权限隔离与问答检索，适用于各行业。",
				Facets: facets("industry", []string{"通用"}, "scene", []string{"通用"},
					"role", []string{"售前", "交付", "管理层"}, "product", []string{"企业知识库"}),
				Metrics: map[string]int{"likes": 30, "comments": 12, "favorites": 31, "views": 2100},
				Date:    "2025-09-12",
			},
			{
				ID: "sol-004", Kind: models.KindSolution,
				Title:   "新能源场站设备预测性运维",
				Summary: "风机与光伏逆变器时序数据异常检测，自动生成检修工单。",
				Facets: facets("industry", []string{"能源", "新能源"}, "scene", []string{"设备运维"},
					"role", []string{"售前"}, "product", []string{"数据中台", "智能体平台"}),
				Metrics: map[string]int{"likes": 18, "comments": 6, "favorites": 9, "views": 540},
				Date:    "2025-10-08",
			},
		},
		models.KindCase: {
			{
				ID: "case-001", Kind: models.KindCase,
				Title:   "某头部车企供应商质量协同案例",
				Summary: "上线三个月缺陷漏检率下降40%，质量问题闭环周期缩短一半。",
				Facets:  facets("industry", []string{"大制造", "汽车产业链"}, "sourceType", []string{"客户案例"}),
				Metrics: map[string]int{"views": 980, "likes": 21},
				Date:    "2025-11-28",
			},
			{
				ID: "case-002", Kind: models.KindCase,
				Title:   "2025银行业大模型应用洞察",
				Summary: "梳理国有大行与股份行在客服、风控、营销中的落地进展。",
				Facets:  facets("industry", []string{"金融", "银行"}, "sourceType", []string{"行业研究"}),
				Metrics: map[string]int{"views": 1530, "likes": 33},
				Date:    "2025-10-30",
			},
			{
				ID: "case-003", Kind: models.KindCase,
				Title:   "省级政务热线智能化改造",
				Summary: "12345热线工单自动分派与摘要，平均处理时长下降25%。",
				Facets:  facets("industry", []string{"政务", "数字政府"}, "sourceType", []string{"客户案例"}),
				Metrics: map[string]int{"views": 640, "likes": 12},
				Date:    "2025-12-05",
			},
		},
		models.KindApp: {
			{
				ID: "app-001", Kind: models.KindApp,
				Title:   "销售拜访纪要助手",
				Summary: "录音转写后自动生成拜访纪要、下一步计划与CRM字段。",
				Facets:  facets("scene", []string{"营销服务/销售助手"}, "role", []string{"销售"}),
				Metrics: map[string]int{"likes": 66, "favorites": 40},
				Date:    "2025-11-02",
			},
			{
				ID: "app-002", Kind: models.KindApp,
				Title:   "标书智能生成",
				Summary: "根据招标文件自动拆解评分项并生成技术标初稿。",
				Facets:  facets("scene", []string{"营销服务/精准营销"}, "role", []string{"售前"}),
				Metrics: map[string]int{"likes": 48, "favorites": 52},
				Date:    "2025-10-15",
			},
			{
				ID: "app-003", Kind: models.KindApp,
				Title:   "企业知识问答",
				Summary: "基于企业知识库的问答入口，所有岗位可用。",
				Facets:  facets("scene", []string{"研发设计/研发知识管理"}, "role", []string{"通用"}),
				Metrics: map[string]int{"likes": 80, "favorites": 12},
				Date:    "2025-08-30",
			},
		},
		models.KindResource: {
			{
				ID: "res-001", Kind: models.KindResource,
				Title:   "大模型平台产品白皮书",
				Summary: "平台架构、部署形态与安全合规说明。",
				Facets:  facets("category", []string{"白皮书"}, "product", []string{"大模型平台"}, "role", []string{"售前"}),
				Metrics: map[string]int{"downloads": 320, "views": 1100},
				Date:    "2025-09-01",
			},
			{
				ID: "res-002", Kind: models.KindResource,
				Title:   "企业知识库报价清单模板",
				Summary: "标准版、专业版、私有化部署报价与折扣口径。",
				Facets:  facets("category", []string{"报价模板"}, "product", []string{"企业知识库"}, "role", []string{"销售"}),
				Metrics: map[string]int{"downloads": 210, "views": 400},
				Date:    "2025-11-11",
			},
			{
				ID: "res-003", Kind: models.KindResource,
				Title:   "智能体平台售前演示脚本",
				Summary: "30分钟标准演示流程与常见问题应答。",
				Facets:  facets("category", []string{"演示材料"}, "product", []string{"智能体平台"}, "role", []string{"售前", "交付"}),
				Metrics: map[string]int{"downloads": 150, "views": 780},
				Date:    "2025-12-01",
			},
		},
		models.KindReview: {
			{
				ID: "rev-001", Kind: models.KindReview,
				Title:   "某股份行客服项目赢单复盘",
				Summary: "以坐席助手切入，POC阶段用真实工单数据证明效果。",
				Facets:  facets("industry", []string{"金融"}, "result", []string{"赢单"}, "product", []string{"智能体平台"}),
				Date:    "2025-12-01",
				Attrs:   map[string]string{"dealSize": "¥1,200万", "client": "某股份制银行", "owner": "华东大区"},
			},
			{
				ID: "rev-002", Kind: models.KindReview,
				Title:   "某车企知识库项目丢单复盘",
				Summary: "客户倾向私有化一体机，报价与交付周期不具优势。",
				Facets:  facets("industry", []string{"大制造"}, "result", []string{"丢单"}, "product", []string{"企业知识库"}),
				Date:    "2025-11-01",
				Attrs:   map[string]string{"dealSize": "¥380万", "client": "某新能源车企", "owner": "华南大区"},
			},
			{
				ID: "rev-003", Kind: models.KindReview,
				Title:   "某电网公司运维平台赢单复盘",
				Summary: "联合生态伙伴提供设备数据接入，差异化在于工单闭环。",
				Facets:  facets("industry", []string{"能源"}, "result", []string{"赢单"}, "product", []string{"数据中台"}),
				Date:    "2025-10-20",
				Attrs:   map[string]string{"dealSize": "¥2,650万", "client": "某省电力公司", "owner": "华北大区"},
			},
		},
		models.KindClient: {
			{
				ID: "cli-001", Kind: models.KindClient,
				Title:   "某新能源车企",
				Summary: "正在推进研发知识管理与供应商质量协同两条线。",
				Facets:  facets("industry", []string{"大制造"}, "subIndustry", []string{"汽车产业链"}, "role", []string{"销售"}),
				Date:    "2025-12-03",
				Attrs:   map[string]string{"value": "¥3,000万", "stage": "方案交流"},
			},
			{
				ID: "cli-002", Kind: models.KindClient,
				Title:   "某股份制银行",
				Summary: "客服一期已上线，二期聚焦营销与风控。",
				Facets:  facets("industry", []string{"金融"}, "subIndustry", []string{"银行"}, "role", []string{"销售", "交付"}),
				Date:    "2025-11-25",
				Attrs:   map[string]string{"value": "¥5,500万", "stage": "续约扩展"},
			},
			{
				ID: "cli-003", Kind: models.KindClient,
				Title:   "某省电力公司",
				Summary: "设备运维平台建设中，关注安全合规。",
				Facets:  facets("industry", []string{"能源"}, "subIndustry", []string{"电力"}, "role", []string{"交付"}),
				Date:    "2025-10-12",
				Attrs:   map[string]string{"value": "¥2,650万", "stage": "交付中"},
			},
			{
				ID: "cli-004", Kind: models.KindClient,
				Title:   "某精密装备集团",
				Summary: "排产优化需求明确，预算待批。",
				Facets:  facets("industry", []string{"大制造"}, "subIndustry", []string{"装备制造"}, "role", []string{"售前"}),
				Date:    "2025-09-18",
				Attrs:   map[string]string{"value": "¥800万", "stage": "需求确认"},
			},
		},
	}
}
