// Package site writes the whole site out as static HTML.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/form"
	"github.com/Gamikaru/thecopysocial/internal/pages"
)

const notFoundFile = "404.html"

type Options struct {
	// Env is the rendering context. Static pages are always the desktop
	// variant; the page script reloads on a narrow viewport so a server can
	// take over.
	Env       pages.Env
	StaticDir string
	OutputDir string
	Log       *zap.Logger
}

type route struct {
	path string
	node g.Node
}

func routes(e pages.Env) []route {
	rs := []route{
		{content.PathHome, pages.Home(e, 0)},
		{content.PathAbout, pages.About(e)},
		{content.PathServices, pages.Services(e)},
		{content.PathPortfolio, pages.Portfolio(e, content.AllTag)},
		{content.PathBlog, pages.Blog(e, content.AllTag)},
		{content.PathContact, pages.Contact(e, form.NewMachine(form.ContactFields()))},
		{content.PathSubscribe, pages.Subscribe(e, form.NewNewsletter())},
	}
	for _, p := range e.Site.Posts {
		rs = append(rs, route{content.PostPath(p.Slug), pages.Post(e, p)})
	}
	return rs
}

// Export cleans the output directory, renders every route to
// <out>/<path>/index.html plus a 404.html, and copies static assets to
// <out>/static. It returns the number of pages written.
func Export(ctx context.Context, opts Options) (int, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.OutputDir
	if err := checkOutputDir(out); err != nil {
		return 0, err
	}

	e := opts.Env
	e.Mobile = false

	log.Info("cleaning output directory", zap.String("dir", out))
	if err := os.RemoveAll(out); err != nil {
		return 0, fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return 0, fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			dst := filepath.Join(out, "static")
			if err := copyDirContents(opts.StaticDir, dst, log); err != nil {
				return 0, fmt.Errorf("failed to copy static assets: %w", err)
			}
			log.Info("static assets copied", zap.String("from", opts.StaticDir), zap.String("to", dst))
		} else {
			log.Info("static directory not found, skipping copy", zap.String("dir", opts.StaticDir))
		}
	}

	written := 0
	for _, r := range routes(e) {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path := filepath.Join(out, filepath.FromSlash(r.path), "index.html")
		if err := writePage(path, r.node); err != nil {
			return written, err
		}
		log.Debug("page written", zap.String("path", r.path), zap.String("file", path))
		written++
	}

	if err := writePage(filepath.Join(out, notFoundFile), pages.NotFound(e)); err != nil {
		return written, err
	}
	written++

	log.Info("export complete", zap.String("dir", out), zap.Int("pages", written))
	return written, nil
}

func checkOutputDir(out string) error {
	clean := filepath.Clean(out)
	if out == "" || clean == "." || clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("refusing to export into %q", out)
	}
	return nil
}

func writePage(path string, n g.Node) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := n.Render(f); err != nil {
		return fmt.Errorf("failed to render '%s': %w", path, err)
	}
	return nil
}

// copyDirContents recursively copies the files and directories under src
// into dst.
func copyDirContents(src, dst string, log *zap.Logger) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			// New directories get os.ModePerm filtered by the umask, not the
			// source directory's mode.
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyAsset(path, dstPath); err != nil {
			return err
		}
		log.Debug("asset copied", zap.String("file", relPath))
		return nil
	})
}

// copyAsset copies one file, creating dst with the source permissions. A
// failed close of dst is reported, so a short write never passes silently.
func copyAsset(srcPath, dstPath string) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open asset %s: %w", srcPath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat asset %s: %w", srcPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(dstPath), err)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create asset %s: %w", dstPath, err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close asset %s: %w", dstPath, cerr))
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", srcPath, dstPath, err)
	}
	return nil
}
