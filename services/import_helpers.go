package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gtm_portal/taxonomy"
)

// 封面占位图地址，按标题生成固定种子
const placeholderCoverURL = "https://picsum.photos/seed/%s/800/450"

// classify 把一级/二级标签限定在分类体系内。
// 一级不合法时两级都清空；二级不属于该一级时只清空二级；只有二级时反查一级。
func classify(tree taxonomy.Tree, l1, l2 string) (string, string) {
	l1, l2 = strings.TrimSpace(l1), strings.TrimSpace(l2)

	if l1 == "" && l2 != "" {
		if parent, ok := tree.ParentOf(l2); ok {
			return parent, l2
		}
		return "", ""
	}
	if !tree.HasL1(l1) {
		return "", ""
	}
	if l2 != "" && !tree.Contains(l1, l2) {
		return l1, ""
	}
	return l1, l2
}

func isImageURL(s string) bool {
	if s == "" || strings.EqualFold(s, coverSentinel) {
		return false
	}
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

// placeholderCover 同一标题总是得到同一张占位图
func placeholderCover(title string) string {
	seed := uuid.NewSHA1(uuid.NameSpaceURL, []byte("gtm-portal/cover/"+title))
	return fmt.Sprintf(placeholderCoverURL, seed.String())
}
