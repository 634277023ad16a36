package irgen

import "github.com/Mexanobar/RuC/internal/types"

// checkTypeAndBranch emits the terminator that turns a condition Answer
// into control flow, branching to s.labelTrue/s.labelFalse ("the current
// branch targets", set by the caller before lowering the condition
// expression). A CONST answer collapses to an unconditional branch; a
// LOGIC answer branches directly off its i1 register; anything else is
// compared against zero first (§4.2.2, the check_type_and_branch idiom).
func (s *State) checkTypeAndBranch(a Answer) {
	switch a.Kind {
	case AnswerConst:
		if a.ConstInt != 0 {
			s.emit("  br label %%lbl%d", s.labelTrue)
		} else {
			s.emit("  br label %%lbl%d", s.labelFalse)
		}
	case AnswerLogic:
		s.emit("  br i1 %%%d, label %%lbl%d, label %%lbl%d", a.Reg, s.labelTrue, s.labelFalse)
	default:
		reg := s.newReg()
		s.emit("  %%%d = icmp ne i32 %s, 0", reg, s.operandString(a, types.IntID))
		s.emit("  br i1 %%%d, label %%lbl%d, label %%lbl%d", reg, s.labelTrue, s.labelFalse)
	}
}
