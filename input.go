package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// input returns the puzzle input for the day, downloading it into the
// input directory on first use.
func (c *config) input(ctx context.Context, year, day int) ([]byte, error) {
	filename := c.inputPath(year, day)
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	session, err := c.session()
	if err != nil {
		return nil, err
	}
	body, err := fetch(ctx, fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day), session)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(ctx context.Context, url, session string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
