package protocol

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequestParsesSet(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("*3\r\n$3\r\nset\r\n$3\r\nfoo\r\n$3\r\nbar\r\n"))
	req, err := ReadRequest(r)
	require.NoError(t, err)
	assert.Equal(t, CmdSet, req.Command)
	assert.Equal(t, "foo", req.Key)
	assert.Equal(t, "bar", req.Value)
}

func TestReadRequestParsesGetAndRemove(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("*2\r\n$3\r\nget\r\n$3\r\nfoo\r\n"))
	req, err := ReadRequest(r)
	require.NoError(t, err)
	assert.Equal(t, CmdGet, req.Command)
	assert.Equal(t, "foo", req.Key)

	r2 := bufio.NewReader(strings.NewReader("*2\r\n$2\r\nrm\r\n$3\r\nfoo\r\n"))
	req2, err := ReadRequest(r2)
	require.NoError(t, err)
	assert.Equal(t, CmdRemove, req2.Command)
	assert.Equal(t, "foo", req2.Key)
}

func TestReadRequestRejectsWrongArity(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("*2\r\n$3\r\nset\r\n$3\r\nfoo\r\n"))
	_, err := ReadRequest(r)
	assert.Error(t, err)
}

func TestReadRequestRejectsUnknownCommand(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("*2\r\n$4\r\nnope\r\n$3\r\nfoo\r\n"))
	_, err := ReadRequest(r)
	assert.Error(t, err)
}

func TestReadRequestRejectsNonArrayHeader(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("$3\r\nfoo\r\n"))
	_, err := ReadRequest(r)
	assert.Error(t, err)
}

func TestWriteSimpleOK(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, WriteSimpleOK(w))
	assert.Equal(t, "+OK\r\n", buf.String())
}

func TestWriteBulkString(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, WriteBulkString(w, "hello"))
	assert.Equal(t, "$5\r\nhello\r\n", buf.String())
}

func TestWriteNull(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, WriteNull(w))
	assert.Equal(t, "$-1\r\n", buf.String())
}

func TestWriteErrorStripsNewlines(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, WriteError(w, "bad thing\nhappened\r\nhere"))
	assert.Equal(t, "-bad thing happened  here\r\n", buf.String())
}
