package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/riverfjs/tgrender"
	"github.com/riverfjs/tgrender/internal/config"
)

func testFlags(t *testing.T, flavor string) *Flags {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Flavor = flavor
	require.NoError(t, cfg.Validate())
	return &Flags{Config: &cfg}
}

func runRender(t *testing.T, flags *Flags, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer

	cmd := NewRenderCmd(flags)
	cmd.in.stdin = strings.NewReader(stdin)

	app := &cli.Command{
		Name:   "tgrender",
		Writer: &buf,
	}
	cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"tgrender", "render"}, args...))
	return buf.String(), err
}

func TestRender_Stdin(t *testing.T) {
	out, err := runRender(t, testFlags(t, "html"),
		`{"text":"Hi <3","entities":[{"type":"bold","offset":0,"length":2}]}`)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hi</b> &lt;3\n", out)
}

func TestRender_UpdateCaption(t *testing.T) {
	input := `{"update_id":1,"message":{"text":"body","caption":"cap","caption_entities":[{"type":"italic","offset":0,"length":3}]}}`

	out, err := runRender(t, testFlags(t, "markdownv2"), input, "--caption")
	require.NoError(t, err)
	assert.Equal(t, "_cap_\n", out)
}

func TestRender_Path(t *testing.T) {
	input := `{"ok":true,"result":[{"update_id":9,"message":{"text":"x.y","entities":[{"type":"code","offset":0,"length":3}]}}]}`

	out, err := runRender(t, testFlags(t, "markdownv2"), input, "--path", "result.0.message")
	require.NoError(t, err)
	assert.Equal(t, "`x.y`\n", out)
}

func TestRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"text":"a","entities":[{"type":"underline","offset":0,"length":1}]}`), 0o644))

	out, err := runRender(t, testFlags(t, "html"), "", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "<u>a</u>\n", out)
}

func TestRender_Chunks(t *testing.T) {
	flags := testFlags(t, "html")
	flags.Config.MaxMessageLength = 4

	out, err := runRender(t, flags, `{"text":"aaa\nbbb","entities":[{"type":"bold","offset":0,"length":7}]}`, "--chunks")
	require.NoError(t, err)

	var msgs []tgrender.Message
	require.NoError(t, json.Unmarshal([]byte(out), &msgs))
	assert.Equal(t, []tgrender.Message{
		{Text: "<b>aaa</b>", ParseMode: "HTML"},
		{Text: "<b>bbb</b>", ParseMode: "HTML"},
	}, msgs)
}

func TestRender_InvalidEntities(t *testing.T) {
	_, err := runRender(t, testFlags(t, "html"), `{"text":"a","entities":[{"type":"","offset":-1,"length":1}]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
	assert.Contains(t, err.Error(), "entities[0].type")
}

func TestRender_MissingCaption(t *testing.T) {
	_, err := runRender(t, testFlags(t, "html"), `{"text":"a"}`, "--caption")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no caption")
}

func TestRender_WatchRequiresFile(t *testing.T) {
	_, err := runRender(t, testFlags(t, "html"), `{"text":"a"}`, "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --file")
}
