package tscycle_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/loopcontext/tscycle"
)

// The suite drives the real pipeline against stub executables standing in for
// pylupdate, linguist and lrelease. Stubs append their invocation to a record
// file and imitate the tools' filesystem effects (creating the .ts and .qm).
var _ = Describe("Translation cycle", func() {
	var (
		projectDir string
		osgeoRoot  string
		binDir     string
		recordPath string
		origPath   string
		cfg        tscycle.Config
		profile    tscycle.Profile
		pipeline   *tscycle.Pipeline
	)

	writeStub := func(name, body string) {
		script := "#!/bin/sh\necho \"" + name + " $@\" >> \"" + recordPath + "\"\n" + body
		err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0o755)
		Expect(err).NotTo(HaveOccurred())
	}

	recordLines := func() []string {
		b, err := os.ReadFile(recordPath)
		Expect(err).NotTo(HaveOccurred())
		return strings.Split(strings.TrimSpace(string(b)), "\n")
	}

	BeforeEach(func() {
		if runtime.GOOS == "windows" {
			Skip("stub tools are shell scripts")
		}

		var err error
		projectDir, err = os.MkdirTemp("", "tscycle-suite-*")
		Expect(err).NotTo(HaveOccurred())
		osgeoRoot, err = os.MkdirTemp("", "tscycle-osgeo-*")
		Expect(err).NotTo(HaveOccurred())

		binDir = filepath.Join(osgeoRoot, "apps", "Qt5", "bin")
		Expect(os.MkdirAll(binDir, 0o755)).To(Succeed())
		recordPath = filepath.Join(projectDir, "record.log")

		// pylupdate5 touches the .ts (its last argument), like the real
		// extractor creating a missing catalog.
		writeStub("pylupdate5", "for a; do ts=$a; done\n: > \"$ts\"\n")
		writeStub("linguist", "")
		writeStub("lrelease", "qm=\"${1%.ts}.qm\"\n: > \"$qm\"\n")

		origPath = os.Getenv("PATH")
		Expect(os.Setenv("PATH", binDir+string(os.PathListSeparator)+origPath)).To(Succeed())

		srcDir := filepath.Join(projectDir, "src")
		Expect(os.MkdirAll(filepath.Join(srcDir, "__pycache__"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(srcDir, "app.py"), []byte("print()\n"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(srcDir, "__pycache__", "skip.py"), []byte(""), 0o644)).To(Succeed())

		cfg = tscycle.DefaultConfig()
		cfg.Locale = "fi"
		cfg.SourceDir = srcDir
		cfg.TranslationsDir = filepath.Join(projectDir, "i18n")

		profile = tscycle.ProfileFor(tscycle.V5, osgeoRoot)
		runner := &tscycle.ExecRunner{Stdout: GinkgoWriter, Stderr: GinkgoWriter, Stdin: strings.NewReader("")}
		pipeline = tscycle.NewPipeline(cfg, profile, runner, log.New(GinkgoWriter))
	})

	AfterEach(func() {
		if origPath != "" {
			Expect(os.Setenv("PATH", origPath)).To(Succeed())
		}
		os.RemoveAll(projectDir)
		os.RemoveAll(osgeoRoot)
	})

	It("runs extract, edit and compile in order", func() {
		Expect(pipeline.Run(context.Background())).To(Succeed())

		lines := recordLines()
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(HavePrefix("pylupdate5 "))
		Expect(lines[1]).To(HavePrefix("linguist "))
		Expect(lines[2]).To(HavePrefix("lrelease "))
	})

	It("passes the discovered files and flags to the extractor", func() {
		Expect(pipeline.Run(context.Background())).To(Succeed())

		extract := recordLines()[0]
		Expect(extract).To(ContainSubstring("-noobsolete"))
		Expect(extract).To(ContainSubstring("-ts " + cfg.TSPath()))
		Expect(extract).To(ContainSubstring("app.py"))
		Expect(extract).NotTo(ContainSubstring("skip.py"))
	})

	It("creates the translation source file before the editor opens", func() {
		Expect(pipeline.Run(context.Background())).To(Succeed())
		Expect(cfg.TSPath()).To(BeAnExistingFile())
	})

	It("compiles the binary catalog alongside the source file", func() {
		Expect(pipeline.Run(context.Background())).To(Succeed())
		Expect(cfg.QMPath()).To(BeAnExistingFile())
	})

	It("still extracts when the file set is empty", func() {
		Expect(os.RemoveAll(cfg.SourceDir)).To(Succeed())
		Expect(os.MkdirAll(cfg.SourceDir, 0o755)).To(Succeed())

		Expect(pipeline.Run(context.Background())).To(Succeed())
		Expect(recordLines()[0]).To(HavePrefix("pylupdate5 "))
	})

	It("propagates an editor failure and skips compilation", func() {
		writeStub("linguist", "exit 3\n")

		err := pipeline.Run(context.Background())
		var runErr *tscycle.RunError
		Expect(errors.As(err, &runErr)).To(BeTrue())
		Expect(runErr.Step).To(Equal("edit"))
		Expect(runErr.ExitCode).To(Equal(3))
		Expect(cfg.QMPath()).NotTo(BeAnExistingFile())
	})

	It("resolves version 6 when pylupdate6 is on the search path", func() {
		writeStub("pylupdate6", "")

		// Restrict the probe to the stub dir so a host install of
		// pylupdate6 cannot interfere.
		Expect(os.Setenv("PATH", binDir)).To(Succeed())
		r := &tscycle.Resolver{Root: osgeoRoot}
		Expect(r.Resolve().Version).To(Equal(tscycle.V6))
	})

	It("falls back to version 5 when pylupdate6 is absent", func() {
		Expect(os.Setenv("PATH", binDir)).To(Succeed())
		r := &tscycle.Resolver{Root: osgeoRoot}
		Expect(r.Resolve().Version).To(Equal(tscycle.V5))
	})
})
