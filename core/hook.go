package core

import "github.com/sarchlab/akita/v4/sim"

// HookPosHeader marks the line that carries the program header. Item is the
// line number.
var HookPosHeader = &sim.HookPos{Name: "Header"}

// HookPosComment marks a source line that contains a comment. Item is the
// line number.
var HookPosComment = &sim.HookPos{Name: "Comment"}

// HookPosInstCommit marks an instruction appended to the program. Item is the
// numbered instr.Inst and Detail its program.Schema.
var HookPosInstCommit = &sim.HookPos{Name: "Inst Commit"}

// HookPosEnd marks the end of a successfully translated input. Item is the
// finished *Program.
var HookPosEnd = &sim.HookPos{Name: "End Of Input"}
