package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"voyagedb/src/batch"
	"voyagedb/src/catalogs"
	"voyagedb/src/helpers"
	"voyagedb/src/output"
	"voyagedb/src/queries"
	"voyagedb/src/settings"

	"go.uber.org/zap"
)

// preferencesFile keeps the layout choice between sessions.
const preferencesFile = "settings.bson"

type preferences struct {
	Labeled bool `bson:"labeled"`
}

// Session is a line-oriented shell over the catalogs. Commands are read
// from In and every answer is printed to Out in the labeled layout unless
// the user switched it off.
type Session struct {
	args   *settings.Arguments
	logger *zap.SugaredLogger

	in  *bufio.Scanner
	out io.Writer

	manager *catalogs.Manager
	engine  *queries.Engine
	prefs   preferences
}

func NewSession(logger *zap.SugaredLogger, args *settings.Arguments, in io.Reader, out io.Writer) *Session {
	s := &Session{
		args:   args,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
		prefs:  preferences{Labeled: true},
	}
	path := s.preferencesPath()
	if helpers.FileExists(path) {
		if err := helpers.LoadBSON(path, &s.prefs); err != nil {
			logger.Warnw("ignoring unreadable preferences", "path", path, "error", err)
		}
	}
	return s
}

// Run drives the shell until quit or EOF.
func (s *Session) Run() error {
	sessionID := helpers.NewRunID()
	s.logger.Infow("interactive session starting", "session_id", sessionID)

	fmt.Fprintln(s.out, "voyagedb interactive shell")
	fmt.Fprintln(s.out, "type 'help' for the command list")
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		switch {
		case line == "quit" || line == "exit":
			s.logger.Infow("interactive session closing", "session_id", sessionID)
			return nil
		case line == "help":
			s.printHelp()
		case line == "layout":
			s.toggleLayout()
		case strings.HasPrefix(line, "load"):
			s.load(strings.TrimSpace(strings.TrimPrefix(line, "load")))
		default:
			s.query(line)
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "  load [dir]     load the dataset (default: configured data directory)")
	fmt.Fprintln(s.out, "  <id> [args]    run a query, e.g. '3 HTL1001'")
	fmt.Fprintln(s.out, "  layout         toggle between labeled and plain answers")
	fmt.Fprintln(s.out, "  help           this list")
	fmt.Fprintln(s.out, "  quit           leave the shell")
}

func (s *Session) toggleLayout() {
	s.prefs.Labeled = !s.prefs.Labeled
	if s.prefs.Labeled {
		fmt.Fprintln(s.out, "answers now use the labeled layout")
	} else {
		fmt.Fprintln(s.out, "answers now use the plain layout")
	}
	if err := helpers.SaveBSON(s.preferencesPath(), &s.prefs); err != nil {
		s.logger.Warnw("could not persist preferences", "error", err)
	}
}

func (s *Session) load(dir string) {
	if dir != "" {
		s.args.DataDir = helpers.StripQuotes(dir)
	}
	runner := batch.NewRunner(s.logger, s.args)
	manager, err := runner.LoadDataset()
	if err != nil {
		fmt.Fprintf(s.out, "load failed: %v\n", err)
		return
	}
	s.manager = manager
	s.engine = queries.NewEngine(manager, s.logger)
	fmt.Fprintf(s.out, "dataset loaded: %d users, %d flights, %d reservations\n",
		manager.Users().Len(), manager.Flights().Len(), manager.Reservations().Len())
}

func (s *Session) query(line string) {
	if s.engine == nil {
		fmt.Fprintln(s.out, "no dataset loaded, run 'load' first")
		return
	}
	cmd, err := queries.ParseCommand(line)
	if err != nil {
		fmt.Fprintf(s.out, "bad command: %v\n", err)
		return
	}
	result, err := s.engine.Run(cmd.ID, cmd.Args)
	if err != nil {
		if errors.Is(err, queries.ErrNotFound) {
			fmt.Fprintln(s.out, "no results")
		} else {
			fmt.Fprintf(s.out, "query failed: %v\n", err)
		}
		return
	}
	output.Write(s.out, result, cmd.Labeled || s.prefs.Labeled)
}

func (s *Session) preferencesPath() string {
	return filepath.Join(s.args.OutputDir, preferencesFile)
}
