package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iotaledger/bstmap/ds/bst"
	"github.com/iotaledger/bstmap/ierrors"
	"github.com/iotaledger/bstmap/lo"
	"github.com/iotaledger/bstmap/logger"
	"github.com/iotaledger/bstmap/options"
)

const noneValue = "<none>"

// Runner executes line oriented scripts of map operations and writes the results of every command to its output.
type Runner struct {
	storage  *bst.Map[string, string]
	output   io.Writer
	commands map[string]*command
	executed int

	log *logger.WrappedLogger

	optLogger *logger.Logger
}

// NewRunner creates a Runner that operates on the given map.
func NewRunner(storage *bst.Map[string, string], output io.Writer, opts ...options.Option[Runner]) *Runner {
	return options.Apply(&Runner{
		storage: storage,
		output:  output,
	}, opts, func(r *Runner) {
		r.log = logger.NewWrappedLogger(r.optLogger)
		r.commands = r.registerCommands()
	})
}

// WithLogger sets the logger of the Runner.
func WithLogger(log *logger.Logger) options.Option[Runner] {
	return func(r *Runner) {
		r.optLogger = log
	}
}

// Run executes the script line by line until the end of the input is reached, a line is invalid or the context is
// canceled. Empty lines and lines starting with "#" are ignored.
func (r *Runner) Run(ctx context.Context, script io.Reader) error {
	scanner := bufio.NewScanner(script)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		if err := ctx.Err(); err != nil {
			return ierrors.Wrapf(err, "script aborted before line %d", lineNumber)
		}

		if err := r.Execute(scanner.Text()); err != nil {
			r.log.LogErrorf("failed to execute line %d: %s", lineNumber, err)

			return ierrors.Wrapf(err, "line %d", lineNumber)
		}
	}

	if err := scanner.Err(); err != nil {
		return ierrors.Wrap(err, "failed to read script")
	}

	r.log.LogInfof("replayed %d commands, map contains %d entries", r.executed, r.storage.Size())

	return nil
}

// Execute executes a single line of a script.
func (r *Runner) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	cmd, exists := r.commands[strings.ToLower(fields[0])]
	if !exists {
		return ierrors.Wrapf(ErrInvalidCommand, "unknown command %q", fields[0])
	}

	args := fields[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return ierrors.Wrapf(ErrInvalidCommand, "wrong number of arguments for %q: %d", fields[0], len(args))
	}

	r.log.LogDebugf("executing %s", line)
	r.executed++

	return cmd.handler(args)
}

// Map returns the map that the Runner operates on.
func (r *Runner) Map() *bst.Map[string, string] {
	return r.storage
}

// command is a script command together with its accepted amount of arguments (maxArgs < 0 means unlimited).
type command struct {
	minArgs int
	maxArgs int
	handler func(args []string) error
}

func (r *Runner) registerCommands() map[string]*command {
	return map[string]*command{
		"set":     {minArgs: 2, maxArgs: -1, handler: r.set(r.storage.Set)},
		"setr":    {minArgs: 2, maxArgs: -1, handler: r.set(r.storage.SetRecursive)},
		"get":     {minArgs: 1, maxArgs: 1, handler: r.get},
		"remove":  {minArgs: 1, maxArgs: 1, handler: r.remove},
		"has":     {minArgs: 1, maxArgs: 1, handler: r.has},
		"size":    {handler: r.size},
		"keys":    {handler: r.keys},
		"values":  {handler: r.values},
		"entries": {handler: r.entries},
		"height":  {handler: r.height},
		"dump":    {handler: r.dump},
		"clear":   {handler: r.clear},
	}
}

func (r *Runner) set(setFunc func(key, value string) (string, bool, error)) func(args []string) error {
	return func(args []string) error {
		previousValue, previousValueExisted, err := setFunc(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		return r.printPrevious(previousValue, previousValueExisted)
	}
}

func (r *Runner) get(args []string) error {
	value, err := r.storage.Get(args[0])
	if err != nil {
		if !ierrors.Is(err, bst.ErrKeyNotFound) {
			return err
		}

		return r.println("error: " + err.Error())
	}

	return r.println(value)
}

func (r *Runner) remove(args []string) error {
	previousValue, previousValueExisted, err := r.storage.Remove(args[0])
	if err != nil {
		return err
	}

	return r.printPrevious(previousValue, previousValueExisted)
}

func (r *Runner) has(args []string) error {
	return r.println(strconv.FormatBool(r.storage.Has(args[0])))
}

func (r *Runner) size([]string) error {
	return r.println(strconv.Itoa(r.storage.Size()))
}

func (r *Runner) keys([]string) error {
	keys := make([]string, 0, r.storage.Size())
	for key := range r.storage.Keys().Seq() {
		keys = append(keys, key)
	}

	return r.println(strings.Join(keys, " "))
}

func (r *Runner) values([]string) error {
	values := make([]string, 0, r.storage.Size())
	for value := range r.storage.Values().Seq() {
		values = append(values, value)
	}

	return r.println(strings.Join(values, " "))
}

func (r *Runner) entries([]string) error {
	entries := make([]bst.Entry[string, string], 0, r.storage.Size())
	for entry := range r.storage.Entries().Seq() {
		entries = append(entries, entry)
	}

	return r.println(strings.Join(lo.Map(entries, func(entry bst.Entry[string, string]) string {
		return entry.Key + "=" + entry.Value
	}), " "))
}

func (r *Runner) height([]string) error {
	return r.println(strconv.Itoa(r.storage.Height()))
}

func (r *Runner) dump([]string) error {
	return r.storage.Dump(r.output)
}

func (r *Runner) clear([]string) error {
	r.storage.Clear()

	return nil
}

func (r *Runner) printPrevious(previousValue string, previousValueExisted bool) error {
	return r.println(lo.Cond(previousValueExisted, previousValue, noneValue))
}

func (r *Runner) println(text string) error {
	if _, err := fmt.Fprintln(r.output, text); err != nil {
		return ierrors.Wrap(err, "failed to write output")
	}

	return nil
}
