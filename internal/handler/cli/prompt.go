package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxAnswerSize bounds a single answer; longer lines are drained and rejected.
const maxAnswerSize = 64 * 1024

var (
	// ErrEndOfInput is returned once the input stream is exhausted.
	ErrEndOfInput = errors.New("cli: end of input")

	// ErrAnswerTooLong is returned for an answer over maxAnswerSize. The rest
	// of the line is consumed, so the next Ask reads the following line.
	ErrAnswerTooLong = errors.New("cli: answer too long")
)

// Prompter writes a prompt and reads one line of answer per call.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints prompt and returns the next line without its line ending.
func (p *Prompter) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	var (
		line    []byte
		read    int
		tooLong bool
	)
	for {
		chunk, err := p.reader.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxAnswerSize+2 {
				tooLong, line = true, nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if read == 0 {
				return "", ErrEndOfInput
			}
			break
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		break
	}

	answer := strings.TrimRight(string(line), "\r\n")
	if tooLong || len(answer) > maxAnswerSize {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrAnswerTooLong, maxAnswerSize)
	}
	return answer, nil
}
