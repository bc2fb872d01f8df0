package shell

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Complete 返回输入的整行补全候选：首个 token 补全命令名，
// 带参数的命令补全第一个参数。前缀匹配优先，没有前缀匹配时退回模糊匹配。
func (r *Registry) Complete(input string) []string {
	line := strings.ToLower(strings.TrimLeft(input, " "))
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return rank(parts[0], r.Names())
	}
	cmd, ok := r.Resolve(parts[0])
	if !ok || cmd.Arity == 0 || cmd.args == nil {
		return nil
	}
	arg := parts[1]
	if strings.Contains(arg, " ") {
		return nil
	}
	ranked := rank(arg, cmd.args())
	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, cmd.Name+" "+c)
	}
	return out
}

func rank(query string, candidates []string) []string {
	if query == "" {
		return append([]string(nil), candidates...)
	}
	var prefixed []string
	for _, c := range candidates {
		if strings.HasPrefix(c, query) {
			prefixed = append(prefixed, c)
		}
	}
	if len(prefixed) > 0 {
		return prefixed
	}
	matches := fuzzy.Find(query, candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// Complete 用补全结果更新输入缓冲并返回全部候选。
// 唯一候选直接替换输入；多个候选时扩展到公共前缀。
func (s *Session) Complete() []string {
	candidates := s.registry.Complete(s.input)
	switch len(candidates) {
	case 0:
	case 1:
		s.input = candidates[0]
		if cmd, ok := s.registry.Resolve(candidates[0]); ok && cmd.Arity > 0 {
			s.input += " "
		}
	default:
		current := strings.ToLower(s.input)
		if p := commonPrefix(candidates); len(p) > len(current) && strings.HasPrefix(p, current) {
			s.input = p
		}
	}
	return candidates
}

func commonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	prefix := items[0]
	for _, item := range items[1:] {
		for !strings.HasPrefix(item, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
