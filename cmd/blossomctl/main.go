package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"blossom/internal/admin"
	"blossom/internal/config"
	"blossom/internal/domain"
	"blossom/internal/session"
	"blossom/internal/store"
	"blossom/internal/validate"
)

const usage = `blossomctl — админ-панель цветочного магазина

Usage:
  blossomctl login <token>
  blossomctl logout
  blossomctl list
  blossomctl add  [-name ...] [-price ...] [-category ...] [-image_url ...]
                  [-description ...] [-composition ...] [-is_available ...]
  blossomctl edit <id> [field flags as for add]
  blossomctl rm   <id> [-yes]
`

// consoleNotifier is the toast analog: non-blocking, never fatal.
type consoleNotifier struct{}

func (consoleNotifier) Notify(level, title, detail string) {
	if detail != "" {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, title, detail)
	} else {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", level, title)
	}
}

// promptConfirmer blocks on a yes/no answer before destructive requests.
type promptConfirmer struct {
	assumeYes bool
}

func (p promptConfirmer) Confirm(prompt string) bool {
	if p.assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	sess := session.New(cfg.TokenFile)
	if err := sess.Load(); err != nil {
		fatal(err)
	}

	cmd, args := os.Args[1], os.Args[2:]
	assumeYes := false
	for _, a := range args {
		if a == "-yes" || a == "--yes" {
			assumeYes = true
		}
	}

	cl := store.NewClient(cfg.StoreURL)
	ctrl := admin.New(cl, sess, consoleNotifier{}, promptConfirmer{assumeYes: assumeYes})
	ctx := context.Background()

	switch cmd {
	case "login":
		if len(args) != 1 {
			fatalf("usage: blossomctl login <token>")
		}
		if err := ctrl.Login(ctx, args[0]); err != nil {
			fatal(err)
		}
		printList(ctrl)
	case "logout":
		ctrl.Logout()
	case "list":
		resume(ctx, ctrl)
		printList(ctrl)
	case "add":
		resume(ctx, ctrl)
		if err := ctrl.OpenEditor(nil); err != nil {
			fatal(err)
		}
		applyFieldFlags(ctrl, args)
		if err := ctrl.Save(ctx); err != nil {
			os.Exit(1)
		}
		printList(ctrl)
	case "edit":
		if len(args) < 1 {
			fatalf("usage: blossomctl edit <id> [field flags]")
		}
		id, ok := validate.ID(args[0])
		if !ok {
			fatalf("invalid product id %q", args[0])
		}
		resume(ctx, ctrl)
		target, found := findProduct(ctrl, id)
		if !found {
			fatalf("product %d not found", id)
		}
		if err := ctrl.OpenEditor(&target); err != nil {
			fatal(err)
		}
		applyFieldFlags(ctrl, args[1:])
		if err := ctrl.Save(ctx); err != nil {
			os.Exit(1)
		}
		printList(ctrl)
	case "rm":
		if len(args) < 1 {
			fatalf("usage: blossomctl rm <id> [-yes]")
		}
		id, ok := validate.ID(args[0])
		if !ok {
			fatalf("invalid product id %q", args[0])
		}
		resume(ctx, ctrl)
		if err := ctrl.DeleteProduct(ctx, id); err != nil {
			os.Exit(1)
		}
		printList(ctrl)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func resume(ctx context.Context, ctrl *admin.Controller) {
	if err := ctrl.Resume(ctx); err != nil {
		fatalf("not logged in; run: blossomctl login <token>")
	}
	if ctrl.State() != admin.StateListReady {
		os.Exit(1)
	}
}

func findProduct(ctrl *admin.Controller, id int64) (domain.Product, bool) {
	for _, p := range ctrl.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func applyFieldFlags(ctrl *admin.Controller, args []string) {
	fs := flag.NewFlagSet("fields", flag.ExitOnError)
	fields := []string{"name", "price", "category", "image_url", "description", "composition", "is_available"}
	values := map[string]*string{}
	for _, f := range fields {
		values[f] = fs.String(f, "", "")
	}
	fs.Bool("yes", false, "skip confirmation prompts")
	_ = fs.Parse(args)

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "yes" {
			return
		}
		if err := ctrl.SetField(f.Name, *values[f.Name]); err != nil {
			fatal(err)
		}
	})
}

func printList(ctrl *admin.Controller) {
	if ctrl.State() != admin.StateListReady {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tНазвание\tЦена\tКатегория\tВ наличии")
	for _, p := range ctrl.Products() {
		avail := "да"
		if !p.IsAvailable {
			avail = "нет"
		}
		fmt.Fprintf(w, "%d\t%s\t%d ₽\t%s\t%s\n", p.ID, p.Name, p.Price, p.Category, avail)
	}
	_ = w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
