package reports

// Kind enum for report types
type Kind string

const (
	KindA3     Kind = "a3-report"
	KindVSM    Kind = "vsm"
	KindQFD    Kind = "qfd"
	KindHoshin Kind = "hoshin"
	KindCustom Kind = "custom"
)

// Key builds the KV key "{kind}:{id}"
func (k Kind) Key(id string) string { return string(k) + ":" + id }

// Prefix is the KV scan prefix for all records of this kind
func (k Kind) Prefix() string { return string(k) + ":" }

// HistoryTag is the short type tag used in the test_history table
func (k Kind) HistoryTag() string {
	if k == KindA3 {
		return "a3"
	}
	return string(k)
}
