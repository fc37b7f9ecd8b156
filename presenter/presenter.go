// This file is part of Cycletrace.
//
// Cycletrace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cycletrace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cycletrace.  If not, see <https://www.gnu.org/licenses/>.

package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/cycletrace/decoder"
	"github.com/jetsetilly/cycletrace/history"
	"github.com/jetsetilly/cycletrace/trace"
)

// Frame is everything needed to render a single cycle.
type Frame struct {
	// position of the snapshot in the trace and the length of the trace
	Index int
	Total int

	// nil if the trace is empty
	Snapshot *trace.Snapshot

	// may be nil
	History *history.Log
}

// Presenter renders frames to an io.Writer.
type Presenter struct {
	Layout Layout
	Color  bool
}

// NewPresenter is the preferred method of initialisation for the Presenter
// type.
func NewPresenter(layout Layout, color bool) *Presenter {
	return &Presenter{
		Layout: layout,
		Color:  color,
	}
}

// NoTrace is rendered in place of a frame when the trace is empty.
const NoTrace = "No trace loaded"

// Render writes the frame to w in the current layout.
func (p *Presenter) Render(w io.Writer, f Frame) error {
	r := renderer{st: newStyles(p.Color)}

	if f.Snapshot == nil {
		r.line(r.st.empty.render(NoTrace))
	} else {
		switch p.Layout {
		case Thin:
			r.thin(f)
		default:
			r.dashboard(f)
		}
	}

	_, err := io.WriteString(w, r.b.String())
	return err
}

// RenderHistory writes only the execution log to w.
func (p *Presenter) RenderHistory(w io.Writer, hist *history.Log) error {
	r := renderer{st: newStyles(p.Color)}
	r.executionLog(hist)
	_, err := io.WriteString(w, r.b.String())
	return err
}

// Progress returns the position as a percentage of the length of the trace,
// to one decimal place.
func Progress(index int, total int) string {
	if total <= 1 {
		return "100.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(index)/float64(total-1)*100)
}

type renderer struct {
	b  strings.Builder
	st styles
}

func (r *renderer) line(s ...string) {
	for _, t := range s {
		r.b.WriteString(t)
	}
	r.b.WriteRune('\n')
}

func (r *renderer) section(title string) {
	r.line()
	r.line(r.st.title.render(title))
}

// the flags are coloured individually when colour is enabled. otherwise the
// value of each flag is shown
func (r *renderer) flags(raw trace.Value) string {
	f := decoder.DecodeFlags(raw)
	if !r.st.flagSet.on {
		return f.String()
	}

	s := make([]string, len(f))
	for i := range f {
		if f[i].Set {
			s[i] = r.st.flagSet.render(f[i].Name)
		} else {
			s[i] = r.st.flagClr.render(f[i].Name)
		}
	}
	return strings.Join(s, " ")
}

type row struct {
	name  string
	value string
}

func (r *renderer) table(rows []row) {
	var width int
	for _, rw := range rows {
		width = max(width, len(rw.name))
	}
	for _, rw := range rows {
		r.line("  ", r.st.label.render(fmt.Sprintf("%-*s", width, rw.name)), "  ", rw.value)
	}
}

func raw(v trace.Value) string {
	if v.IsAbsent() {
		return decoder.Absent
	}
	return v.String()
}

func (r *renderer) dashboard(f Frame) {
	s := f.Snapshot

	r.line(r.st.title.render(fmt.Sprintf("Cycle: %s / %d", raw(s.Cycle), f.Total-1)),
		"    ", r.st.label.render("Progress: "+Progress(f.Index, f.Total)))

	r.section("REGISTERS")
	var rows []row
	for _, reg := range s.Registers {
		rows = append(rows, row{reg.Name, r.st.value.render(decoder.FormatValue(reg.Value, decoder.DefaultWidth))})
	}
	rows = append(rows, row{"FLAGS", r.flags(s.Flags)})
	for _, sys := range []struct {
		name string
		v    trace.Value
	}{{"SP", s.SP}, {"IR", s.IR}, {"MAR", s.MAR}, {"MDR", s.MDR}} {
		if sys.v.Present() {
			rows = append(rows, row{sys.name, r.st.value.render(decoder.FormatValue(sys.v, decoder.DefaultWidth))})
		}
	}
	r.table(rows)

	r.section("INSTRUCTION")
	pc := decoder.FormatValue(s.PC, decoder.DefaultWidth)
	if d, ok := decoder.DecodeInstruction(s); ok {
		r.table([]row{
			{"PC:", pc},
			{"Opcode:", fmt.Sprintf("%s (%s)", r.st.current.render(d.Mnemonic), d.Opcode)},
			{"Mode:", fmt.Sprintf("%s (%s)", d.Mode, d.ModeNum)},
			{"Rd:", d.Rd},
			{"Rs:", d.Rs},
			{"Extra:", d.Extra},
		})
	} else {
		r.line("  ", r.st.label.render("PC:"), " ", pc)
		r.line("  ", r.st.empty.render("(No instruction data available)"))
	}

	r.section("MEMORY WRITES")
	if len(s.MemWrites) == 0 {
		r.line("  ", r.st.empty.render("No memory writes this cycle"))
	}
	for _, m := range s.MemWrites {
		r.line("  ", fmt.Sprintf("Addr %s: %s → %s",
			decoder.FormatValue(m.Addr, 4),
			decoder.FormatValue(m.Old, 2),
			r.st.change.render(decoder.FormatValue(m.New, 2))))
	}

	r.section("EXECUTION LOG")
	r.executionLog(f.History)
}

func (r *renderer) executionLog(hist *history.Log) {
	if hist == nil || hist.Len() == 0 {
		r.line("  ", r.st.empty.render("No execution history yet"))
		return
	}

	for e := range hist.Entries() {
		s := fmt.Sprintf("Cycle %d: %s", e.Cycle, e.Instruction)
		if e.IsCurrent {
			r.line("> ", r.st.current.render(s))
		} else {
			r.line("  ", s)
		}
	}
}

func (r *renderer) thin(f Frame) {
	s := f.Snapshot

	r.line(r.st.title.render(fmt.Sprintf("Cycle: %s PC: %s", raw(s.Cycle), raw(s.PC))))

	r.section("Registers")
	var rows []row
	for _, reg := range s.Registers {
		rows = append(rows, row{reg.Name, decoder.FormatValue(reg.Value, decoder.DefaultWidth)})
	}
	r.table(rows)
	r.line("Flags: ", r.flags(s.Flags))
	if s.SP.Present() {
		r.line("SP: ", decoder.FormatValue(s.SP, decoder.DefaultWidth))
	}

	if s.IR.Present() || s.MAR.Present() || s.MDR.Present() {
		r.section("Internal")
		for _, sys := range []struct {
			name string
			v    trace.Value
		}{{"IR", s.IR}, {"MAR", s.MAR}, {"MDR", s.MDR}} {
			if sys.v.Present() {
				r.line(sys.name, ": ", decoder.FormatValue(sys.v, decoder.DefaultWidth))
			}
		}
	}

	r.section("Instruction")
	if in := s.Instr; in != nil {
		r.line(fmt.Sprintf("opcode: %s (%s)", raw(in.Opcode), decoder.Opcode(in.Opcode)))
		r.line(fmt.Sprintf("mode: %s (%s) rd: %s rs: %s extra: %s",
			raw(in.Mode), decoder.Mode(in.Mode), raw(in.Rd), raw(in.Rs), raw(in.Extra)))
	} else {
		r.line(r.st.empty.render("(none)"))
	}

	r.section("Memory Writes")
	if len(s.MemWrites) == 0 {
		r.line(r.st.empty.render("(none)"))
	}
	for _, m := range s.MemWrites {
		r.line(fmt.Sprintf("%s : %s → %s", raw(m.Addr), raw(m.Old), raw(m.New)))
	}
}
