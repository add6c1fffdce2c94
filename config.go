package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func addFlags(fs *pflag.FlagSet) {
	fs.Int("day", -1, "day to run")
	fs.String("part", "", "part to run")
	fs.Bool("sample", false, "only run sample")
	fs.Bool("skip-sample", false, "skip sample")
	fs.Bool("debug", false, "debug mode")
	fs.String("input-dir", "", "directory holding cached puzzle inputs (default .)")
	fs.StringToString("set", nil, "solver setting as key=value, may be repeated")
}

// config is the resolved configuration of one run. Flags take precedence
// over AOC_* environment variables, which take precedence over defaults.
type config struct {
	v *viper.Viper

	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
}

func newConfig(fs *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("input-dir", ".")
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("session-file", filepath.Join(home, "keys", "aoc.session"))
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return &config{
		v:          v,
		day:        v.GetInt("day"),
		part:       v.GetString("part"),
		debug:      v.GetBool("debug"),
		onlySample: v.GetBool("sample"),
		skipSample: v.GetBool("skip-sample"),
	}, nil
}

func (c *config) setting(key string) string {
	if s, ok := c.v.GetStringMapString("set")[key]; ok {
		return s
	}
	return c.v.GetString(key)
}

func (c *config) inputPath(year, day int) string {
	return filepath.Join(c.v.GetString("input-dir"), fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

// session returns the adventofcode.com session cookie, from AOC_SESSION or
// from the file named by AOC_SESSION_FILE.
func (c *config) session() (string, error) {
	if s := c.v.GetString("session"); s != "" {
		return s, nil
	}
	name := c.v.GetString("session-file")
	if name == "" {
		return "", fmt.Errorf("no session: set AOC_SESSION or AOC_SESSION_FILE")
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
