package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s", 1, "abc")
	_, err := s.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Несколько ReadInput подряд не теряют буферизованный ввод
func TestReadInput_Sequential(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("first\n  second  \nlast"), &out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := s.ReadInput("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := s.ReadInput("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput_Stdin(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	result, err := stdio.ReadInput("Prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
}

// Не терминал: пароль читается обычной строкой
func TestReadPassword_NotTerminal(t *testing.T) {
	s := NewStream(strings.NewReader("hunter2\n"), io.Discard)
	got, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestReadAll(t *testing.T) {
	s := NewStream(strings.NewReader("a\nb\n\nc"), io.Discard)
	got, err := s.ReadAll("Paste lines: ")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n\nc", got)
}
