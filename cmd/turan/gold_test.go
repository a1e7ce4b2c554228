package main

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-python/gpython/py"
	"github.com/raphaelyuster/turan-inducibility/libturan"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

func TestGoldTable(t *testing.T) {
	expected, err := os.ReadFile("../../libturan/testdata/default-grid.tex")
	if err != nil {
		t.Fatal(err)
	}

	opts := libturan.DefaultTableOpts
	opts.Print = turan.PrintOpts{LaTeX: true}
	opts.Compute.Workers = 4

	b := strings.Builder{}
	if err = renderTable(&b, opts); err != nil {
		t.Fatal(err)
	}
	if b.String() != string(expected) {
		t.Fatalf("table mismatch:\n%s", b.String())
	}
}

func TestGoldScripts(t *testing.T) {
	scriptDir := "testdata/"
	files, err := os.ReadDir(scriptDir)
	if err != nil {
		t.Fatal(err)
	}

	goldDir := t.TempDir()

	for _, fi := range files {
		pyFile := path.Join(scriptDir, fi.Name())
		ext := filepath.Ext(pyFile)
		if ext != ".py" {
			continue
		}

		outputPathname := path.Join(goldDir, fi.Name()[:len(fi.Name())-len(ext)]+".txt")
		{
			ctx := py.NewContext(py.DefaultContextOpts())
			redirect, err := RedirectToFile(outputPathname, ctx)
			if err != nil {
				t.Fatal(err)
			}

			_, err = py.RunFile(ctx, pyFile, py.CompileOpts{}, nil)
			ctx.Close()
			<-ctx.Done()

			if cerr := redirect.Close(); cerr != nil {
				t.Fatal(cerr)
			}
			if err != nil {
				py.TracebackDump(err)
				t.Fatalf("%s: %v", pyFile, err)
			}
		}

		out, err := os.ReadFile(outputPathname)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), "i(T(6,5)) = 178200 / 371293") {
			t.Fatalf("%s: unexpected output:\n%s", pyFile, out)
		}
	}
}

type pyRedirect struct {
	file       *os.File
	prevStdout *os.File
}

func RedirectToFile(outputPathname string, ctx py.Context) (io.Closer, error) {
	ofile, err := os.OpenFile(outputPathname, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}

	sys := ctx.Store().MustGetModule("sys")
	sys.Globals["stdout"] = &py.File{
		File:     ofile,
		FileMode: py.FileWrite,
	}

	redir := &pyRedirect{
		file:       ofile,
		prevStdout: os.Stdout,
	}

	os.Stdout = ofile
	return redir, nil
}

func (redir *pyRedirect) Close() error {
	if redir.prevStdout == nil {
		return nil
	}

	// Restore the previous Stdout and close the output file
	os.Stdout = redir.prevStdout
	err := redir.file.Close()
	redir.file = nil
	redir.prevStdout = nil
	return err
}
