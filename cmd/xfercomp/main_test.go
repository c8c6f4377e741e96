package main

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/xfermode"
)

func writeImage(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if filepath.Ext(path) == ".bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func readPixel(t *testing.T, path string, x, y int) color.RGBA {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRunComposites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.bmp")
	out := filepath.Join(dir, "out.png")
	writeImage(t, src, 2, 2, color.RGBA{R: 255, A: 255})
	writeImage(t, dst, 2, 2, color.RGBA{B: 255, A: 255})

	var stdout, stderr bytes.Buffer
	err := run([]string{"-src", src, "-dst", dst, "-out", out, "-mode", "src-atop", "-alpha", "128"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := color.RGBA{R: 128, B: 127, A: 255}
	if got := readPixel(t, out, 1, 1); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestRunScale(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")
	writeImage(t, src, 1, 1, color.RGBA{R: 255, A: 255})
	writeImage(t, dst, 3, 3, color.RGBA{B: 255, A: 255})

	tests := []struct {
		name    string
		scale   bool
		redAt22 bool
	}{
		{"unscaled", false, false},
		{"scaled", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".png")
			args := []string{"-src", src, "-dst", dst, "-out", out}
			if tt.scale {
				args = append(args, "-scale")
			}
			if err := run(args, &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
				t.Fatalf("run() error = %v", err)
			}

			if got := readPixel(t, out, 0, 0); got.R < 250 || got.B > 5 {
				t.Errorf("pixel (0, 0) = %v, want red", got)
			}
			got := readPixel(t, out, 2, 2)
			isRed := got.R > 250 && got.B < 5
			if isRed != tt.redAt22 {
				t.Errorf("pixel (2, 2) = %v, want red=%v", got, tt.redAt22)
			}
		})
	}
}

func TestRunUnsupportedModeWarns(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")
	out := filepath.Join(dir, "out.png")
	writeImage(t, src, 1, 1, color.RGBA{R: 255, A: 255})
	writeImage(t, dst, 1, 1, color.RGBA{B: 255, A: 255})

	var stderr bytes.Buffer
	if err := run([]string{"-src", src, "-dst", dst, "-out", out, "-mode", "overlay"}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stderr.String(), xfermode.CategoryUnsupportedMode) {
		t.Errorf("stderr = %q, want an unsupported-mode warning", stderr.String())
	}
	if got := readPixel(t, out, 0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want SRC_OVER result", got)
	}
}

func TestRunList(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-list"}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"SRC_OVER", "OVERLAY", "UNSUPPORTED", "17"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	writeImage(t, src, 1, 1, color.RGBA{A: 255})

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"missing inputs", []string{"-src", src}, errUsage, ""},
		{"unknown mode", []string{"-src", src, "-dst", src, "-mode", "normal"}, xfermode.ErrUnknownMode, ""},
		{"alpha out of range", []string{"-src", src, "-dst", src, "-alpha", "256"}, nil, "out of range"},
		{"missing file", []string{"-src", filepath.Join(dir, "nope.png"), "-dst", src}, os.ErrNotExist, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(append(tt.args, "-out", filepath.Join(dir, "out.png")), &bytes.Buffer{}, &bytes.Buffer{})
			if err == nil {
				t.Fatal("run() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("run() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestHelpExitsCleanly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-h"}, &stdout, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("run(-h) = %v, want flag.ErrHelp", err)
	}
	if code := exitCode(err); code != 0 {
		t.Errorf("exitCode(ErrHelp) = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "-mode") {
		t.Errorf("usage not printed, stderr: %s", stderr.String())
	}
	if code := exitCode(errUsage); code != 1 {
		t.Errorf("exitCode(errUsage) = %d, want 1", code)
	}
}
