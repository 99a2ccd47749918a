package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gtm_portal/logger"
	"gtm_portal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search <kind>",
	Short: "在终端中查询列表页",
	Long: `按与页面相同的规则筛选和排序条目。

Examples:
  gtm-portal search solution -q 质量 -f industry=大制造
  gtm-portal search review -s dealSize -f result=赢单
  gtm-portal search client -f industry=金融,能源 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "关键词")
	searchCmd.Flags().StringP("sort", "s", "", "排序键")
	searchCmd.Flags().StringArrayP("facet", "f", nil, "facet筛选，格式 维度=值1,值2，可重复")
	searchCmd.Flags().Bool("json", false, "以JSON输出")
	searchCmd.Flags().BoolP("verbose", "v", false, "输出日志")
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind, err := models.ParseKind(args[0])
	if err != nil {
		return err
	}

	facets, _ := cmd.Flags().GetStringArray("facet")
	selections, err := parseFacetFlags(facets)
	if err != nil {
		return err
	}
	text, _ := cmd.Flags().GetString("query")
	sortKey, _ := cmd.Flags().GetString("sort")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := loadConfig()
	if verbose {
		if err := logger.Init(cfg); err != nil {
			return err
		}
	} else {
		logger.Discard()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	page, err := a.catalog.List(ctx, kind, models.CatalogQuery{Text: text, Sort: sortKey, Selections: selections})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}
	return printPage(cmd.OutOrStdout(), page)
}

// parseFacetFlags 解析 "industry=大制造,金融"，同一维度可出现多次
func parseFacetFlags(flags []string) (models.FacetSelection, error) {
	selections := models.FacetSelection{}
	for _, f := range flags {
		dim, values, ok := strings.Cut(f, "=")
		dim = strings.TrimSpace(dim)
		if !ok || dim == "" {
			return nil, fmt.Errorf("invalid facet %q, expected dim=value[,value]", f)
		}
		for _, v := range strings.Split(values, ",") {
			if v = strings.TrimSpace(v); v != "" {
				selections[dim] = append(selections[dim], v)
			}
		}
	}
	return selections, nil
}

func printPage(w io.Writer, page models.CatalogPage) error {
	fmt.Fprintf(w, "%s  共%d条  排序: %s\n\n", page.Kind.Label(), page.Total, page.Sort)
	if page.Total == 0 {
		fmt.Fprintln(w, "没有匹配的条目")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t标题\t日期\t指标")
	for _, it := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.ID, it.Title, it.Date, formatMetrics(it.Metrics))
	}
	return tw.Flush()
}

func formatMetrics(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, " ")
}
