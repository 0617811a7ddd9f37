package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/noah-isme/edu-admin-client/internal/listing"
	"github.com/noah-isme/edu-admin-client/internal/loader"
	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/internal/service"
	"github.com/noah-isme/edu-admin-client/pkg/export"
)

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("ADMIN_PASSWORD"), "account password (defaults to $ADMIN_PASSWORD)")
	if err := parse(fs, args); err != nil {
		return err
	}

	redirect, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	u := a.session.User()
	fmt.Fprintln(a.out, a.translator.T("auth.welcome", map[string]string{"name": u.Name}))
	fmt.Fprintf(a.out, "redirect: %s\n", redirect)
	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, a.translator.T("auth.signed_out", nil))
	return nil
}

func runWhoami(ctx context.Context, a *app, _ []string) error {
	if err := a.session.Init(ctx); err != nil {
		return err
	}
	u := a.session.User()
	if u == nil {
		return fmt.Errorf("not signed in")
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%d\n", u.ID)
	fmt.Fprintf(w, "name\t%s\n", u.Name)
	fmt.Fprintf(w, "email\t%s\n", u.Email)
	fmt.Fprintf(w, "role\t%s\n", u.Role)
	fmt.Fprintf(w, "permissions\t%s\n", strings.Join(u.Permissions, ", "))
	return w.Flush()
}

func runStudents(ctx context.Context, a *app, args []string) error {
	fs := newFlags("students")
	var filter models.StudentFilter
	fs.StringVar(&filter.Search, "search", "", "search term")
	fs.StringVar(&filter.Status, "status", "", "status filter")
	fs.StringVar(&filter.Country, "country", "", "country filter")
	fs.IntVar(&filter.Page, "page", 1, "page number")
	fs.IntVar(&filter.PerPage, "per-page", 0, "page size")
	sortBy := fs.String("sort", "", "sort the page by name, email, coursesCount, createdAt or status")
	order := fs.String("order", string(listing.Asc), "sort order")
	if err := parse(fs, args); err != nil {
		return err
	}

	l := loader.New[*models.PaginatedResponse[models.Student]](ctx, "students", loader.WithLogger[*models.PaginatedResponse[models.Student]](a.logger))
	defer l.Close()

	page, err := l.Load(func(ctx context.Context) (*models.PaginatedResponse[models.Student], error) {
		return a.services.Students.List(ctx, filter)
	})
	if err != nil {
		return err
	}

	students := page.Data
	if *sortBy != "" {
		students = listing.SortStudents(students, listing.SortField(*sortBy), listing.Direction(*order))
	}

	fmt.Fprintln(a.out, a.translator.T("students.title", nil))
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tCOURSES")
	for _, s := range students {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Email,
			a.translator.T("students.status."+s.Status, nil), s.CoursesCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "page %d/%d, %d total\n", page.CurrentPage, page.LastPage, page.Total)
	return nil
}

func runExportSalaries(ctx context.Context, a *app, args []string) error {
	fs := newFlags("export-salaries")
	var filter models.SalaryFilter
	format := fs.String("format", service.FormatCSV, "csv or pdf")
	fs.StringVar(&filter.Month, "month", "", "month (YYYY-MM)")
	fs.StringVar(&filter.Status, "status", "", "status filter")
	fs.Int64Var(&filter.TeacherID, "teacher", 0, "teacher id")
	if err := parse(fs, args); err != nil {
		return err
	}

	exporter := service.NewSalaryExporter(a.services.Salaries, a.downloads, a.logger)
	path, err := exporter.Export(ctx, filter, strings.ToLower(*format))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, path)
	return nil
}

func runDownloadReport(ctx context.Context, a *app, args []string) error {
	fs := newFlags("download-report")
	id := fs.Int64("id", 0, "report id")
	if err := parse(fs, args); err != nil {
		return err
	}

	dl, err := a.services.Reports.DownloadPDF(ctx, *id)
	if err != nil {
		return err
	}
	name := dl.Filename
	if name == "" {
		name = export.Filename(fmt.Sprintf("report-%d", *id), "pdf", time.Now())
	}
	path, err := a.downloads.Save(name, dl.Data)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, path)
	return nil
}

func runLang(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		if err := a.translator.SetLanguage(ctx, args[0]); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "%s (%s)\n", a.translator.Language(), a.translator.Direction())
	return nil
}

func runSidebar(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		if args[0] != "toggle" {
			return fmt.Errorf("%w: sidebar accepts only \"toggle\"", errUsage)
		}
		if _, err := a.sidebar.Toggle(ctx); err != nil {
			return err
		}
	}
	state := "closed"
	if a.sidebar.IsOpen() {
		state = "open"
	}
	fmt.Fprintln(a.out, state)
	return nil
}
