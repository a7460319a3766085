// Package loop implements the read, validate and compare loop of one guessing session.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/randomizedcoder/guess/internal/guess"
)

// ErrInputClosed is returned by Run when input ends before a winning guess.
var ErrInputClosed = errors.New("input closed before the secret number was guessed")

// Messages written to the session output.
const (
	MsgWelcome    = "Guess the number!"
	MsgPrompt     = "Please input your guess."
	MsgNotNumeric = "Not a numeric guess"
	MsgTooSmall   = "Too small!"
	MsgTooBig     = "Too big!"
	MsgWin        = "You win!"
)

// Result summarizes a won session.
type Result struct {
	Secret   int
	Attempts uint64
}

// Looper runs one guessing session.
type Looper struct {
	logger *zap.Logger
	reader *bufio.Reader
	out    io.Writer
	secret int
	count  uint64
}

// New creates a Looper with a clock-seeded secret number.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Looper {
	return NewWithRng(in, out, logger, NewRng(0))
}

// NewWithRng creates a Looper that draws its secret from rng.
func NewWithRng(in io.Reader, out io.Writer, logger *zap.Logger, rng *rand.Rand) *Looper {
	return &Looper{
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
		secret: RandomNumberInRange(rng, guess.Min, guess.Max),
	}
}

// Run plays the session until the secret is guessed. It returns an error
// wrapping *guess.RangeError for an out-of-range guess, ErrInputClosed if
// input ends first, or the context error once ctx is done.
func (l *Looper) Run(ctx context.Context) (Result, error) {
	l.println(MsgWelcome)
	l.printf("The secret number is: %d\n", l.secret)

	l.logger.Info("session started", zap.Int("secret", l.secret))

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("session cancelled", zap.Uint64("attempts", l.count))
			return Result{}, err
		}

		l.println(MsgPrompt)

		line, err := l.readLine()
		if err != nil {
			return Result{}, err
		}

		won, err := l.step(line)
		if err != nil {
			return Result{}, err
		}
		if won {
			l.logger.Info("session won",
				zap.Int("secret", l.secret),
				zap.Uint64("attempts", l.count),
			)
			return Result{Secret: l.secret, Attempts: l.count}, nil
		}
	}
}

// step handles one line of input and reports whether it won the session.
func (l *Looper) step(line string) (bool, error) {
	text := strings.TrimSpace(line)

	// Anything outside int32 is non-numeric rather than out of range.
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		l.logger.Debug("non-numeric guess", zap.String("input", text))
		l.println(MsgNotNumeric)
		return false, nil
	}

	g, err := guess.New(int(n))
	if err != nil {
		return false, fmt.Errorf("invalid guess: %w", err)
	}

	l.count++
	l.printf("You guessed: %d\n", g.Value())

	ord := guess.Compare(g, l.secret)
	l.logger.Info("guess",
		zap.Uint64("count", l.count),
		zap.Int("value", g.Value()),
		zap.Stringer("ordering", ord),
	)

	switch ord {
	case guess.Less:
		l.println(MsgTooSmall)
		return false, nil
	case guess.Greater:
		l.println(MsgTooBig)
		return false, nil
	case guess.Equal:
		l.println(MsgWin)
		return true, nil
	default:
		panic(fmt.Sprintf("loop: unexpected ordering %d", ord))
	}
}

// readLine returns the next line. A final line without a newline is
// still returned; ErrInputClosed follows once nothing is left.
func (l *Looper) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", ErrInputClosed
		}
		return line, nil
	default:
		return "", fmt.Errorf("read guess: %w", err)
	}
}

func (l *Looper) println(s string) {
	_, _ = fmt.Fprintln(l.out, s)
}

func (l *Looper) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}

// Secret returns the session's secret number.
func (l *Looper) Secret() int {
	return l.secret
}

// Count returns the number of accepted guesses so far.
func (l *Looper) Count() uint64 {
	return l.count
}
