package shell

// InputHistory 记录每次非空提交的原始文本，供上下键回溯。
// cursor == -1 表示未处于浏览状态；cursor == n 表示距离最新一条 n 步。
// 回溯只移动 cursor，从不修改 entries。
type InputHistory struct {
	entries []string
	cursor  int
}

// NewInputHistory 返回一个空历史。
func NewInputHistory() *InputHistory {
	return &InputHistory{cursor: -1}
}

// Add 追加一条提交并结束浏览。
func (h *InputHistory) Add(raw string) {
	h.entries = append(h.entries, raw)
	h.cursor = -1
}

// Previous 向更早的条目移动。已到最早一条时返回 false，cursor 不变。
func (h *InputHistory) Previous() (string, bool) {
	if h.cursor+1 >= len(h.entries) {
		return "", false
	}
	h.cursor++
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Next 向更新的条目移动。从最新一条继续向下会退出浏览并返回空串；
// 未浏览时返回 false。
func (h *InputHistory) Next() (string, bool) {
	switch {
	case h.cursor > 0:
		h.cursor--
		return h.entries[len(h.entries)-1-h.cursor], true
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	default:
		return "", false
	}
}

// Reset 结束浏览。
func (h *InputHistory) Reset() {
	h.cursor = -1
}

// Browsing 报告是否处于浏览状态。
func (h *InputHistory) Browsing() bool {
	return h.cursor >= 0
}

func (h *InputHistory) Cursor() int {
	return h.cursor
}

func (h *InputHistory) Len() int {
	return len(h.entries)
}

// Entries 返回按提交顺序（旧 → 新）排列的副本。
func (h *InputHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}
