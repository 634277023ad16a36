package diag

// Sink receives diagnostics as they are reported. internal/builder and
// internal/irgen both take a Sink at construction time and never buffer
// diagnostics themselves (§6: "reported via a side channel, not
// exceptions").
type Sink interface {
	Emit(d Diagnostic)
}

// Bag is a Sink that accumulates every diagnostic it receives and
// tracks the error count the top-level emitter returns (§7: "the return
// value of the top-level emitter is the number of errors reported").
type Bag struct {
	diagnostics []Diagnostic
	errorCount  int
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Emit(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
	if d.Code.Severity() == SeverityError {
		b.errorCount++
	}
}

func (b *Bag) All() []Diagnostic { return b.diagnostics }
func (b *Bag) ErrorCount() int   { return b.errorCount }
func (b *Bag) HasErrors() bool   { return b.errorCount > 0 }

// Tee fans one Emit call out to every sink in order, for cases where a
// diagnostic should both print to the console and accumulate in a Bag.
type Tee []Sink

func (t Tee) Emit(d Diagnostic) {
	for _, s := range t {
		s.Emit(d)
	}
}
