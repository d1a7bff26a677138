// Package interactive provides the interactive command-line interface
// for regview.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/design"
	"github.com/regview/regview-go/pkg/inspect"
	"github.com/regview/regview-go/pkg/session"
)

const defaultSearchLimit = 20

// Shell handles interactive mode for regview.
type Shell struct {
	sess      *session.Session
	formatter *inspect.Formatter
	out       io.Writer

	// cwd is the current element id; "" is the root.
	cwd    string
	failed bool
}

// NewShell creates a shell writing to out.
func NewShell(sess *session.Session, formatter *inspect.Formatter, out io.Writer) *Shell {
	return &Shell{
		sess:      sess,
		formatter: formatter,
		out:       out,
	}
}

// Cwd returns the current element id.
func (s *Shell) Cwd() string {
	return s.cwd
}

// Failed reports whether any command has failed.
func (s *Shell) Failed() bool {
	return s.failed
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends or ctx is canceled.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	fmt.Fprintln(s.out, "Type 'help' for commands.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if s.Execute(line) {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

func (s *Shell) prompt() string {
	return fmt.Sprintf("regview %s> ", (&inspect.Path{ElementID: s.cwd}).String())
}

// completer offers command names, then child names of the current element.
func (s *Shell) completer() readline.AutoCompleter {
	children := func(string) []string {
		return inspect.ChildNames(s.sess.Design(), s.cwd)
	}
	fields := func(string) []string {
		return inspect.FieldNames(s.sess.Design(), s.cwd)
	}
	resets := func(string) []string {
		if states, err := s.sess.ResetStates(s.cwd); err == nil {
			return states
		}
		return nil
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("ls", readline.PcItemDynamic(children)),
		readline.PcItem("cd", readline.PcItemDynamic(children)),
		readline.PcItem("show", readline.PcItemDynamic(children)),
		readline.PcItem("pwd"),
		readline.PcItem("tree"),
		readline.PcItem("set"),
		readline.PcItem("field", readline.PcItemDynamic(fields)),
		readline.PcItem("base",
			readline.PcItem("hex"), readline.PcItem("bin"), readline.PcItem("dec")),
		readline.PcItem("swap",
			readline.PcItem("none"), readline.PcItem("byte"), readline.PcItem("word")),
		readline.PcItem("resets"),
		readline.PcItem("reset", readline.PcItemDynamic(resets)),
		readline.PcItem("find"),
		readline.PcItem("quit"),
	)
}

// Execute runs one command line and reports whether the shell should exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "ls", "l":
		err = s.cmdList(args)

	case "cd":
		err = s.cmdCd(args)

	case "pwd":
		fmt.Fprintln(s.out, (&inspect.Path{ElementID: s.cwd}).String())

	case "show", "s":
		err = s.cmdShow(args)

	case "tree", "t":
		err = s.formatter.FormatTree(s.out, s.sess.Design())

	case "set":
		err = s.cmdSet(args)

	case "field", "f":
		err = s.cmdField(args)

	case "base", "b":
		err = s.cmdBase(args)

	case "swap":
		err = s.cmdSwap(args)

	case "resets":
		err = s.cmdResets(args)

	case "reset":
		err = s.cmdReset(args)

	case "find", "search":
		err = s.cmdFind(args)

	case "quit", "exit", "q":
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
		s.failed = true
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		s.failed = true
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  ls [path]              List the children of an element
  cd <path>              Change the current element (/, .., /blk/reg, blk.reg)
  pwd                    Print the current element
  show [path]            Show a register, a field (path:field) or a block
  tree                   Print the whole design tree
  set [path] <value>     Set a register value (0x.., 0b.., decimal, ? for unknown)
  field <name> [value]   Show or set a field of the current register
  base [hex|bin|dec]     Show or change the display base
  swap [none|byte|word]  Show or change the swap mode
  resets [path]          List the reset states of a register
  reset [name]           Apply a reset state, or re-apply the selected one
  find <query> [limit]   Search element and field names, addresses and docs
  help                   Show this help
  quit                   Exit`)
}

// resolve resolves an optional path argument against the current element.
func (s *Shell) resolve(args []string) (*inspect.Path, error) {
	if len(args) == 0 {
		return &inspect.Path{ElementID: s.cwd}, nil
	}
	return inspect.ResolvePath(s.sess.Design(), s.cwd, args[0])
}

// register returns the current register, or an error if the current
// element is not one.
func (s *Shell) register() (*design.Element, error) {
	if s.cwd == "" {
		return nil, fmt.Errorf("%w: at the root, cd to a register first", design.ErrNotRegister)
	}
	return s.sess.Register(s.cwd)
}

func (s *Shell) cmdList(args []string) error {
	p, err := s.resolve(args)
	if err != nil {
		return err
	}
	d := s.sess.Design()
	if p.ElementID != "" {
		if e, ok := d.Element(p.ElementID); ok && e.IsRegister() {
			for _, name := range inspect.FieldNames(d, e.ID) {
				f := e.Field(name)
				fmt.Fprintf(s.out, "  %-10s :%s\n", inspect.FormatBitRange(f), name)
			}
			return nil
		}
	}
	for _, id := range inspect.Children(d, p.ElementID) {
		e, ok := d.Element(id)
		if !ok {
			continue
		}
		fmt.Fprintf(s.out, "  %-10s %s [%s]\n", inspect.FormatAddress(e.Addr), e.ID[strings.LastIndexByte(e.ID, '.')+1:], e.Type)
	}
	return nil
}

func (s *Shell) cmdCd(args []string) error {
	if len(args) == 0 {
		s.cwd = ""
		return nil
	}
	p, err := s.resolve(args)
	if err != nil {
		return err
	}
	if p.Field != "" {
		return fmt.Errorf("%w: cannot cd into field %q", inspect.ErrInvalidPath, p.Field)
	}
	s.cwd = p.ElementID
	return nil
}

func (s *Shell) cmdShow(args []string) error {
	p, err := s.resolve(args)
	if err != nil {
		return err
	}
	d := s.sess.Design()
	if p.ElementID == "" {
		return s.formatter.FormatTree(s.out, d)
	}

	e, ok := d.Element(p.ElementID)
	if !ok {
		return fmt.Errorf("%w: %q", design.ErrMissingElement, p.ElementID)
	}
	if p.Field != "" {
		return s.showField(e, p.Field)
	}
	if !e.IsRegister() {
		fmt.Fprintf(s.out, "%s @ %s [%s]\n", e.ID, inspect.FormatAddress(e.Addr), e.Type)
		if s.formatter.ShowDoc && e.Doc != "" {
			fmt.Fprintln(s.out, s.formatter.Indent(1, e.Doc))
		}
		return s.cmdList([]string{p.String()})
	}

	s.formatter.Swap = s.sess.Swap()
	return s.formatter.FormatRegister(s.out, e, s.sess.Base())
}

func (s *Shell) showField(reg *design.Element, name string) error {
	f := reg.Field(name)
	if f == nil {
		return fmt.Errorf("%w: %q in %s", design.ErrUnknownField, name, reg.ID)
	}
	value, err := s.sess.FieldValue(reg.ID, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s:%s %s %s\n", reg.ID, f.Name, inspect.FormatBitRange(f), f.Access)
	fmt.Fprintf(s.out, "value: %s\n", value)
	if s.formatter.ShowDoc && f.Doc != "" {
		fmt.Fprintln(s.out, s.formatter.Indent(1, f.Doc))
	}
	for _, en := range f.Enums {
		line := fmt.Sprintf("%s = %s", en.Name, en.Value)
		if s.formatter.ShowDoc && en.Doc != "" {
			line += "  " + en.Doc
		}
		fmt.Fprintln(s.out, s.formatter.Indent(1, line))
	}
	return nil
}

func (s *Shell) cmdSet(args []string) error {
	var id, value string
	switch len(args) {
	case 1:
		reg, err := s.register()
		if err != nil {
			return err
		}
		id, value = reg.ID, args[0]
	case 2:
		p, err := s.resolve(args[:1])
		if err != nil {
			return err
		}
		if p.Field != "" {
			if err := s.sess.SetFieldValue(p.ElementID, p.Field, args[1]); err != nil {
				return err
			}
			return s.printValue(p.ElementID)
		}
		id, value = p.ElementID, args[1]
	default:
		return fmt.Errorf("usage: set [path] <value>")
	}
	if err := s.sess.SetRegisterValue(id, value); err != nil {
		return err
	}
	return s.printValue(id)
}

func (s *Shell) cmdField(args []string) error {
	reg, err := s.register()
	if err != nil {
		return err
	}
	switch len(args) {
	case 1:
		return s.showField(reg, args[0])
	case 2:
		if err := s.sess.SetFieldValue(reg.ID, args[0], args[1]); err != nil {
			return err
		}
		return s.printValue(reg.ID)
	default:
		return fmt.Errorf("usage: field <name> [value]")
	}
}

func (s *Shell) printValue(id string) error {
	v, err := s.sess.RegisterValue(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %s\n", id, v)
	return nil
}

func (s *Shell) cmdBase(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "base: %s\n", s.sess.Base())
		return nil
	}
	b, err := bits.ParseBaseName(args[0])
	if err != nil {
		return err
	}
	if err := s.sess.SetBase(b); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "base: %s\n", b)
	return nil
}

func (s *Shell) cmdSwap(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "swap: %s\n", s.sess.Swap())
		return nil
	}
	sw, err := bits.ParseSwap(args[0])
	if err != nil {
		return err
	}
	if err := s.sess.SetSwap(sw); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "swap: %s\n", sw)
	return nil
}

func (s *Shell) cmdResets(args []string) error {
	p, err := s.resolve(args)
	if err != nil {
		return err
	}
	states, err := s.sess.ResetStates(p.ElementID)
	if err != nil {
		return err
	}
	selected, err := s.sess.SelectedReset(p.ElementID)
	if err != nil {
		return err
	}
	for _, name := range states {
		marker := " "
		if name == selected {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %s\n", marker, name)
	}
	return nil
}

func (s *Shell) cmdReset(args []string) error {
	reg, err := s.register()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		err = s.sess.Reset(reg.ID)
	} else {
		err = s.sess.SelectReset(reg.ID, args[0])
	}
	if err != nil {
		return err
	}
	return s.printValue(reg.ID)
}

func (s *Shell) cmdFind(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: find <query> [limit]")
	}
	limit := defaultSearchLimit
	query := args
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil && n >= 0 {
			limit = n
			query = args[:len(args)-1]
		}
	}
	matches := inspect.Search(s.sess.Design(), strings.Join(query, " "), limit)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No matches.")
		return nil
	}
	d := s.sess.Design()
	for _, m := range matches {
		addr := "-"
		if e, ok := d.Element(m.ID); ok {
			addr = inspect.FormatAddress(e.Addr)
		}
		fmt.Fprintf(s.out, "  %-10s %s\n", addr, (&inspect.Path{ElementID: m.ID, Field: m.Field}).String())
	}
	return nil
}
