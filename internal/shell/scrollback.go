package shell

// Scrollback 是只追加的命令记录，唯一的删除方式是 Clear。
type Scrollback struct {
	records []Record
}

func (s *Scrollback) Append(rec Record) {
	s.records = append(s.records, rec)
}

// Clear 清空全部记录。
func (s *Scrollback) Clear() {
	s.records = nil
}

func (s *Scrollback) Len() int {
	return len(s.records)
}

// Records 返回按插入顺序排列的副本。
func (s *Scrollback) Records() []Record {
	return append([]Record(nil), s.records...)
}

// Last 返回最近一条记录。
func (s *Scrollback) Last() (Record, bool) {
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[len(s.records)-1], true
}
