// Package query 纯函数派生视图：按条件筛选集合，不修改输入，不缓存结果。
package query

// All 筛选器中表示"不过滤"的取值
const All = "all"

// IsAll 取值为空或 "all" 时不过滤
func IsAll(v string) bool {
	return v == "" || v == All
}

// filter 返回满足 keep 的元素组成的新切片，保持原有顺序
func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// distinct 按首次出现顺序去重
func distinct[T any](items []T, key func(*T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for i := range items {
		k := key(&items[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
