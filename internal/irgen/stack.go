package irgen

// pushStackTicket emits a stacksave and records it on the open-ticket
// chain for the function currently being emitted; decl.go calls this
// once per dynamic array alloca (§5).
func (s *State) pushStackTicket() int {
	s.usedStackSave = true
	reg := s.newReg()
	s.emit("  %%stacksave.%d = call i8* @llvm.stacksave()", reg)
	s.stackTickets = append(s.stackTickets, reg)
	return reg
}

// popStackTicketsTo restores every ticket opened since depth was
// recorded, innermost first, then truncates the chain back to depth.
// Called when a compound scope exits normally; a `return` instead walks
// the whole chain itself (§9 open question 3), since control never
// reaches the matching popStackTicketsTo call in that case.
func (s *State) popStackTicketsTo(depth int) {
	for i := len(s.stackTickets) - 1; i >= depth; i-- {
		s.emit("  call void @llvm.stackrestore(i8* %%stacksave.%d)", s.stackTickets[i])
	}
	s.stackTickets = s.stackTickets[:depth]
}
