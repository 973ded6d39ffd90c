package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goskema4j/i18n"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand(nil)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestCheckDatesText(t *testing.T) {
	out, err := execute(t, "", "check", "--kind", "date", "--min", "2019-02-01", "testdata/dates.json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	golden(t).Assert(t, "check_dates_text", []byte(out))
}

func TestCheckPointsJSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "check", "--kind", "point", "--rule", "coordinates", "testdata/points.yaml")
	require.Error(t, err)
	golden(t).Assert(t, "check_points_json", []byte(out))
}

func TestSchemaDate(t *testing.T) {
	out, err := execute(t, "", "schema", "--kind", "date", "--min", "2019-01-01", "--less", "2020-01-01")
	require.NoError(t, err)
	golden(t).Assert(t, "schema_date", []byte(out))
}

func TestCheckStdinSingleValue(t *testing.T) {
	out, err := execute(t, `"2019-01-01T10:00:00"`, "check", "--kind", "localdatetime")
	require.NoError(t, err)
	assert.Equal(t, "/ ok 2019-01-01T10:00:00.000000000\n1 checked, 0 failed\n", out)
}

func TestCheckStdinYAMLJSONOutput(t *testing.T) {
	out, err := execute(t, "- 2019-01-01T10:00:00+02:00\n", "--format", "json", "check", "--kind", "datetime", "--input", "yaml")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "/0", resp.Data.Results[0].Path)
	assert.Equal(t, "2019-01-01T10:00:00.000000000+02:00", resp.Data.Results[0].Value)
}

func TestCheckFailFast(t *testing.T) {
	out, err := execute(t, `{"x": 1, "y": 2, "z": 3}`, "--fail-fast", "check", "--kind", "point", "--rule", "coordinates", "--rule", "is2d")
	require.Error(t, err)
	assert.Equal(t, "/ neo4jPoint.coordinates: \"value\" must be a valid coordinates point\n1 checked, 1 failed\n", out)
}

func TestCheckJapanese(t *testing.T) {
	out, err := execute(t, `"x"`, "--lang", "ja", "check", "--kind", "date")
	t.Cleanup(func() { i18n.SetLanguage("en") })
	require.Error(t, err)
	assert.Contains(t, out, "は有効な Date である必要があります")
}

func TestCommandErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"--format", "xml", "check", "--kind", "date"}},
		{"bad lang", []string{"--lang", "fr", "check", "--kind", "date"}},
		{"unknown kind", []string{"check", "--kind", "duration"}},
		{"rule on temporal", []string{"check", "--kind", "date", "--rule", "is3d"}},
		{"limit on point", []string{"check", "--kind", "point", "--min", "2019-01-01"}},
		{"unknown rule", []string{"schema", "--kind", "point", "--rule", "round"}},
		{"invalid limit", []string{"schema", "--kind", "date", "--max", "soon"}},
		{"missing file", []string{"check", "--kind", "date", "testdata/nope.json"}},
		{"bad input format", []string{"check", "--kind", "date", "--input", "toml"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, `"2019-01-01"`, tc.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestCheckTruncated(t *testing.T) {
	_, err := execute(t, `["2019-01-01","2019-01-02"]`, "--max-bytes", "8", "check", "--kind", "date")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "truncated")
}

func TestVerboseLogsToStderr(t *testing.T) {
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(`"2019-01-01"`))
	cmd.SetArgs([]string{"--verbose", "check", "--kind", "date"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "checked values")

	stderr.Reset()
	cmd = NewRootCommand(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(`"2019-01-01"`))
	cmd.SetArgs([]string{"check", "--kind", "date"})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stderr.String(), "checked values")
}
