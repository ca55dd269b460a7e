package dockerfile

// Span is a half-open byte-offset range [Start, End) into the text passed
// to Parse or ParseIter.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Spanned pairs a value with the span of text it was parsed from.
type Spanned[T any] struct {
	Span  Span
	Value T
}

// Keyword is the span of a recognized instruction keyword's letters.
type Keyword struct {
	Span Span
}

// Flag is a `--name` or `--name=value` option.
type Flag struct {
	flagStart int
	Name      UnescapedString
	Value     *UnescapedString
}

// FlagSpan returns the span of just `--name`.
func (f Flag) FlagSpan() Span { return Span{f.flagStart, f.Name.Span.End} }

// Span returns the span of the whole flag, including `=value` if present.
func (f Flag) Span() Span {
	if f.Value != nil {
		return Span{f.flagStart, f.Value.Span.End}
	}
	return f.FlagSpan()
}

// UnescapedString is a token whose line-continuation escapes (and, inside
// a JSON array, JSON string escapes) have been folded away. Value is a
// substring of the original input when no fold was needed, and a freshly
// built string otherwise; JSON array elements are always freshly built.
// Callers cannot distinguish the two cases from the type, only from
// whether Value shares memory with the input.
type UnescapedString struct {
	Span  Span
	Value string
}

func (UnescapedString) isSource() {}

// HereDoc is the body of a `<<DELIM` here-document.
type HereDoc struct {
	Span Span
	// Expand is false iff the opening delimiter was quoted.
	Expand bool
	Value  string
}

func (HereDoc) isSource() {}

// Source is an ADD/COPY source item: either a path or a here-document.
type Source interface {
	isSource()
}

// Command is the argument payload of RUN, CMD, ENTRYPOINT, and
// HEALTHCHECK CMD: either JSON exec form or raw shell form.
type Command interface {
	isCommand()
}

// ExecCommand is the JSON-array ("exec") form of a Command.
type ExecCommand struct {
	Span  Span
	Value []UnescapedString
}

func (ExecCommand) isCommand() {}

// ShellCommand is the raw-remainder-of-line ("shell") form of a Command.
// Escapes are preserved verbatim in Value; it is never unescaped.
type ShellCommand struct {
	Span  Span
	Value string
}

func (ShellCommand) isCommand() {}

// JSONOrStringArray is the argument payload of VOLUME: either a JSON array
// or a space-separated list of unescaped tokens.
type JSONOrStringArray interface {
	isJSONOrStringArray()
}

// JSONArray is the JSON-array form of a JSONOrStringArray.
type JSONArray struct {
	Span  Span
	Value []UnescapedString
}

func (JSONArray) isJSONOrStringArray() {}

// StringArray is the space-separated form of a JSONOrStringArray.
type StringArray struct {
	Value []UnescapedString
}

func (StringArray) isJSONOrStringArray() {}

// Instruction is any of the 18 Dockerfile verbs.
type Instruction interface {
	// instructionSpan is the span of the instruction's keyword, used to
	// anchor "expected FROM" and similar positional errors.
	instructionSpan() Span
}

// AddInstruction is `ADD [options] <src>... <dest>`.
type AddInstruction struct {
	Add     Keyword
	Options []Flag
	// Src has at least one element.
	Src  []Source
	Dest UnescapedString
}

func (i *AddInstruction) instructionSpan() Span { return i.Add.Span }

// ArgInstruction is `ARG <name>[=<value>] ...`.
type ArgInstruction struct {
	Arg       Keyword
	Arguments UnescapedString
}

func (i *ArgInstruction) instructionSpan() Span { return i.Arg.Span }

// CmdInstruction is `CMD ...`.
type CmdInstruction struct {
	Cmd       Keyword
	Arguments Command
}

func (i *CmdInstruction) instructionSpan() Span { return i.Cmd.Span }

// CopyInstruction is `COPY [options] <src>... <dest>`.
type CopyInstruction struct {
	Copy    Keyword
	Options []Flag
	Src     []Source
	Dest    UnescapedString
}

func (i *CopyInstruction) instructionSpan() Span { return i.Copy.Span }

// EntrypointInstruction is `ENTRYPOINT ...`.
type EntrypointInstruction struct {
	Entrypoint Keyword
	Arguments  Command
}

func (i *EntrypointInstruction) instructionSpan() Span { return i.Entrypoint.Span }

// EnvInstruction is `ENV <key>=<value> ...`.
type EnvInstruction struct {
	Env       Keyword
	Arguments UnescapedString
}

func (i *EnvInstruction) instructionSpan() Span { return i.Env.Span }

// ExposeInstruction is `EXPOSE <port>[/<protocol>] ...`.
type ExposeInstruction struct {
	Expose    Keyword
	Arguments []UnescapedString
}

func (i *ExposeInstruction) instructionSpan() Span { return i.Expose.Span }

// FromInstruction is `FROM [options] <image> [AS <name>]`.
type FromInstruction struct {
	From    Keyword
	Options []Flag
	Image   UnescapedString
	// As is set when the instruction has an `AS <name>` clause.
	As *FromAs
}

// FromAs is the `AS <name>` clause of a FromInstruction.
type FromAs struct {
	As   Keyword
	Name UnescapedString
}

func (i *FromInstruction) instructionSpan() Span { return i.From.Span }

// HealthcheckInstruction is `HEALTHCHECK [options] (CMD ... | NONE)`.
type HealthcheckInstruction struct {
	Healthcheck Keyword
	Options     []Flag
	Arguments   HealthcheckArguments
}

func (i *HealthcheckInstruction) instructionSpan() Span { return i.Healthcheck.Span }

// HealthcheckArguments is the CMD-or-NONE payload of a HealthcheckInstruction.
type HealthcheckArguments interface {
	isHealthcheckArguments()
}

// HealthcheckCmd is the `CMD ...` form of HealthcheckArguments.
type HealthcheckCmd struct {
	Cmd       Keyword
	Arguments Command
}

func (HealthcheckCmd) isHealthcheckArguments() {}

// HealthcheckNone is the `NONE` form of HealthcheckArguments.
type HealthcheckNone struct {
	None Keyword
}

func (HealthcheckNone) isHealthcheckArguments() {}

// LabelInstruction is `LABEL <key>=<value> ...`.
type LabelInstruction struct {
	Label     Keyword
	Arguments UnescapedString
}

func (i *LabelInstruction) instructionSpan() Span { return i.Label.Span }

// MaintainerInstruction is the deprecated `MAINTAINER <name>`.
type MaintainerInstruction struct {
	Maintainer Keyword
	Name       UnescapedString
}

func (i *MaintainerInstruction) instructionSpan() Span { return i.Maintainer.Span }

// OnbuildInstruction is `ONBUILD <instruction>`.
type OnbuildInstruction struct {
	Onbuild     Keyword
	Instruction Instruction
}

func (i *OnbuildInstruction) instructionSpan() Span { return i.Onbuild.Span }

// RunInstruction is `RUN [options] <command>`, optionally followed by one
// here-document.
type RunInstruction struct {
	Run       Keyword
	Options   []Flag
	Arguments Command
	HereDocs  []HereDoc
}

func (i *RunInstruction) instructionSpan() Span { return i.Run.Span }

// ShellInstruction is `SHELL ["executable", "param"]`.
type ShellInstruction struct {
	Shell     Keyword
	Arguments []UnescapedString
}

func (i *ShellInstruction) instructionSpan() Span { return i.Shell.Span }

// StopsignalInstruction is `STOPSIGNAL <signal>`.
type StopsignalInstruction struct {
	Stopsignal Keyword
	Arguments  UnescapedString
}

func (i *StopsignalInstruction) instructionSpan() Span { return i.Stopsignal.Span }

// UserInstruction is `USER <user>[:<group>]`.
type UserInstruction struct {
	User      Keyword
	Arguments UnescapedString
}

func (i *UserInstruction) instructionSpan() Span { return i.User.Span }

// VolumeInstruction is `VOLUME ["/data"]`.
type VolumeInstruction struct {
	Volume    Keyword
	Arguments JSONOrStringArray
}

func (i *VolumeInstruction) instructionSpan() Span { return i.Volume.Span }

// WorkdirInstruction is `WORKDIR /path/to/workdir`.
type WorkdirInstruction struct {
	Workdir   Keyword
	Arguments UnescapedString
}

func (i *WorkdirInstruction) instructionSpan() Span { return i.Workdir.Span }

// ParserDirective is one recognized `# key=value` preamble line.
type ParserDirective[T any] struct {
	start int
	Value Spanned[T]
}

// Span returns the span of the whole directive line, from its leading `#`
// through the end of the value.
func (d ParserDirective[T]) Span() Span { return Span{d.start, d.Value.Span.End} }

// ParserDirectives holds the parser directives recognized in the preamble.
// See https://docs.docker.com/reference/dockerfile/#parser-directives.
type ParserDirectives struct {
	Syntax *ParserDirective[string]
	Escape *ParserDirective[rune]
	Check  *ParserDirective[string]
}

// Stage is one `FROM` instruction plus the instructions that follow it, up
// to (but not including) the next `FROM`.
type Stage struct {
	From         *FromInstruction
	Instructions []Instruction
}

// stageRange is a half-open index range into Document.Instructions.
type stageRange struct {
	Start int
	End   int
}

// Document is a fully parsed Dockerfile, including stage assembly and
// duplicate-stage-name detection. It is returned by Parse and is
// immutable; concurrent reads from multiple goroutines are safe.
type Document struct {
	ParserDirectives ParserDirectives
	Instructions     []Instruction

	stages       []stageRange
	stagesByName map[string]int
}

// GlobalArgs returns the ARG instructions that precede the first FROM.
func (d *Document) GlobalArgs() []*ArgInstruction {
	if len(d.stages) == 0 {
		return nil
	}
	end := d.stages[0].Start
	args := make([]*ArgInstruction, 0, end)
	for _, instr := range d.Instructions[:end] {
		args = append(args, instr.(*ArgInstruction))
	}
	return args
}

// Stages returns every build stage in source order.
func (d *Document) Stages() []Stage {
	stages := make([]Stage, len(d.stages))
	for i, r := range d.stages {
		stages[i] = d.stageAt(r)
	}
	return stages
}

// Stage looks up a build stage by its `AS <name>` name.
func (d *Document) Stage(name string) (Stage, bool) {
	i, ok := d.stagesByName[name]
	if !ok {
		return Stage{}, false
	}
	return d.stageAt(d.stages[i]), true
}

func (d *Document) stageAt(r stageRange) Stage {
	from := d.Instructions[r.Start].(*FromInstruction)
	return Stage{From: from, Instructions: d.Instructions[r.Start+1 : r.End]}
}
