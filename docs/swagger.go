package docs

// @title GTM销售门户 API
// @version 1.0
// @description 解决方案、案例、AI应用、资料库、复盘和作战地图的统一检索，以及AI助手（对话、智能导入、润色、图表）
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
