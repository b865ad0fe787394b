package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/idilsaglam/taskboard/internal/app"
	"github.com/idilsaglam/taskboard/internal/ui"
)

// Env is what subcommands operate on.
type Env struct {
	App      *app.App
	Renderer *ui.Renderer
	Out      *ui.Output
	Err      *ui.Output
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, env Env) int {
	if len(args) == 0 {
		PrintHelp(env.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(env.Out)
		return 0

	case "ls":
		return doList(env)

	case "add":
		return doAdd(a, env)

	case "rm":
		if len(a) != 1 {
			env.Err.Fail("usage: taskboard rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			env.Err.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(n, env)
	}

	env.Err.Fail("unknown subcommand: " + cmd)
	env.Err.Println("")
	PrintHelp(env.Err)
	return 2
}

func PrintHelp(o *ui.Output) {
	o.Println(`taskboard - a tiny task board

Usage:
  taskboard [flags]                 Open the interactive board
  taskboard [flags] <subcommand>

Subcommands:
  ls                                List tasks, newest first
  add -name N -description D -deadline YYYY-MM-DD
                                    Add a task (all fields required)
  rm <index>                        Remove the task at 1-based index (as shown by ls)

Examples:
  taskboard add -name "Buy milk" -description "2%" -deadline 2025-01-05
  taskboard ls
  taskboard rm 1`)
}

// -------------- subcommand impls ----------------

func doList(env Env) int {
	nodes := env.App.Nodes()
	lines := []string{env.Renderer.Theme.Title.Render(fmt.Sprintf("Tasks  %d total", len(nodes))), ""}
	if len(nodes) == 0 {
		lines = append(lines, env.Renderer.Empty())
	}
	for i, n := range nodes {
		lines = append(lines, fmt.Sprintf("%2d.", i+1), env.Renderer.Card(n.Task, ui.CardState{}))
	}
	env.Out.Panel(lines)
	return 0
}

func doAdd(args []string, env Env) int {
	var f app.Form
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.Name, "name", "", "task name")
	fs.StringVar(&f.Description, "description", "", "task description")
	fs.StringVar(&f.Deadline, "deadline", "", "deadline, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		env.Err.Fail("add: " + err.Error())
		return 2
	}

	if _, err := env.App.Submit(f); err != nil {
		if errors.Is(err, app.ErrIncomplete) {
			env.Err.Fail("add: " + err.Error())
			env.Err.Println("usage: taskboard add -name N -description D -deadline YYYY-MM-DD")
			return 2
		}
		env.Err.Fail("save: " + err.Error())
		return 1
	}
	env.Out.OK("added")
	return 0
}

func doRemove(userIndex int, env Env) int {
	nodes := env.App.Nodes()
	if userIndex < 1 || userIndex > len(nodes) {
		env.Err.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(nodes), userIndex))
		env.Err.Println("Hint: run `taskboard ls` to see valid indexes")
		return 2
	}
	id := nodes[userIndex-1].ID
	env.App.BeginRemove(id)
	if _, err := env.App.CommitRemove(id); err != nil {
		env.Err.Fail("save: " + err.Error())
		return 1
	}
	env.Out.OK("removed")
	return 0
}
