// Command bookstore is the terminal front end for the books API:
// list/get/add/update/delete plus an interactive browse mode with a
// debounced search box.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/shravya312/Online-book-Store/internal/client"
	"github.com/shravya312/Online-book-Store/internal/models"
)

const usage = `usage: bookstore <command> [flags]

commands:
  list     list books (-search, -category, -page, -limit)
  get      show one book: bookstore get <id>
  add      create a book (-title, -author, -isbn, -price, ...)
  update   update fields: bookstore update <id> [flags]
  delete   delete a book: bookstore delete <id> [-y]
  browse   interactive list with live (debounced) search
`

func main() {
	_ = godotenv.Load()

	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:5000/api"
	}
	api := client.New(base)
	ctx := context.Background()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "list":
		cmdList(ctx, api, os.Args[2:])
	case "get":
		cmdGet(ctx, api, os.Args[2:])
	case "add":
		cmdAdd(ctx, api, os.Args[2:])
	case "update":
		cmdUpdate(ctx, api, os.Args[2:])
	case "delete":
		cmdDelete(ctx, api, os.Args[2:])
	case "browse":
		cmdBrowse(ctx, api)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func cmdList(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "free-text search over title/author/isbn")
	category := fs.String("category", "", "exact category filter")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "page size")
	_ = fs.Parse(args)

	resp := api.GetBooks(ctx, client.ListQuery{
		Search: *search, Category: *category, Page: *page, Limit: *limit,
	})
	if !resp.Success {
		fail(resp.Message)
	}
	printBooks(resp.Data)
	if p := resp.Pagination; p != nil {
		fmt.Printf("page %d/%d (%d total)\n", p.Page, p.Pages, p.Total)
	}
}

func cmdGet(ctx context.Context, api *client.Client, args []string) {
	if len(args) != 1 {
		fail("usage: bookstore get <id>")
	}
	resp := api.GetBook(ctx, args[0])
	if !resp.Success {
		fail(resp.Message)
	}
	printBook(*resp.Data)
}

func cmdAdd(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "title (required)")
	author := fs.String("author", "", "author (required)")
	isbn := fs.String("isbn", "", "isbn (required, unique)")
	price := fs.Float64("price", 0, "price (required, >= 0)")
	description := fs.String("description", "", "description (required)")
	category := fs.String("category", "", "category (required)")
	stock := fs.Int("stock", 0, "stock (>= 0)")
	image := fs.String("image", "", "image URL")
	published := fs.String("published", "", "published date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	resp := api.CreateBook(ctx, map[string]any{
		"title":         *title,
		"author":        *author,
		"isbn":          *isbn,
		"price":         *price,
		"description":   *description,
		"category":      *category,
		"stock":         *stock,
		"imageUrl":      *image,
		"publishedDate": *published,
	})
	if !resp.Success {
		failEnvelope(resp)
	}
	fmt.Println(resp.Message)
	printBook(*resp.Data)
}

func cmdUpdate(ctx context.Context, api *client.Client, args []string) {
	if len(args) < 1 {
		fail("usage: bookstore update <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	title := fs.String("title", "", "title")
	author := fs.String("author", "", "author")
	isbn := fs.String("isbn", "", "isbn")
	price := fs.Float64("price", 0, "price")
	description := fs.String("description", "", "description")
	category := fs.String("category", "", "category")
	stock := fs.Int("stock", 0, "stock")
	image := fs.String("image", "", "image URL")
	published := fs.String("published", "", "published date (YYYY-MM-DD)")
	_ = fs.Parse(args[1:])

	// Only flags the user actually set go into the patch; everything else
	// stays untouched server-side.
	patch := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch["title"] = *title
		case "author":
			patch["author"] = *author
		case "isbn":
			patch["isbn"] = *isbn
		case "price":
			patch["price"] = *price
		case "description":
			patch["description"] = *description
		case "category":
			patch["category"] = *category
		case "stock":
			patch["stock"] = *stock
		case "image":
			patch["imageUrl"] = *image
		case "published":
			patch["publishedDate"] = *published
		}
	})
	if len(patch) == 0 {
		fail("nothing to update: set at least one field flag")
	}

	resp := api.UpdateBook(ctx, id, patch)
	if !resp.Success {
		failEnvelope(resp)
	}
	fmt.Println(resp.Message)
	printBook(*resp.Data)
}

func cmdDelete(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("y", false, "skip confirmation")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fail("usage: bookstore delete <id> [-y]")
	}
	id := fs.Arg(0)

	if !*yes {
		got := api.GetBook(ctx, id)
		if !got.Success {
			fail(got.Message)
		}
		if !confirm(fmt.Sprintf("Delete %q by %s?", got.Data.Title, got.Data.Author)) {
			fmt.Println("aborted")
			return
		}
	}

	resp := api.DeleteBook(ctx, id)
	if !resp.Success {
		fail(resp.Message)
	}
	fmt.Println(resp.Message)
}

// cmdBrowse is the interactive list: every typed line becomes the search
// term after a 500ms quiet period, so fast typing causes one fetch.
func cmdBrowse(ctx context.Context, api *client.Client) {
	debounce := client.NewDebouncer(500 * time.Millisecond)
	defer debounce.Stop()

	var (
		search   string
		category string
		page     = 1
		view     []models.Book
	)

	refetch := func() {
		resp := api.GetBooks(ctx, client.ListQuery{
			Search: search, Category: category, Page: page, Limit: 10,
		})
		if !resp.Success {
			fmt.Println(resp.Message)
			return
		}
		view = resp.Data
		printBooks(view)
		if p := resp.Pagination; p != nil {
			fmt.Printf("page %d/%d (%d total)\n", p.Page, p.Pages, p.Total)
		}
	}
	refetch()

	fmt.Println(`type to search | :cat <name> | :n / :p pages | :d <row> delete | :q quit`)
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == ":q":
			return
		case line == ":n":
			page++
			refetch()
		case line == ":p":
			if page > 1 {
				page--
			}
			refetch()
		case strings.HasPrefix(line, ":cat"):
			category = strings.TrimSpace(strings.TrimPrefix(line, ":cat"))
			page = 1
			refetch()
		case strings.HasPrefix(line, ":d "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ":d ")))
			if err != nil || n < 1 || n > len(view) {
				fmt.Println("no such row")
				continue
			}
			b := view[n-1]
			if !confirm(fmt.Sprintf("Delete %q by %s?", b.Title, b.Author)) {
				continue
			}
			resp := api.DeleteBook(ctx, b.ID)
			if !resp.Success {
				fmt.Println(resp.Message)
				continue
			}
			// Drop the row locally; no refetch needed.
			view = append(view[:n-1], view[n:]...)
			printBooks(view)
		default:
			search = line
			page = 1
			debounce.Trigger(refetch)
		}
	}
}

func printBooks(books []models.Book) {
	if len(books) == 0 {
		fmt.Println("(no books)")
		return
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tAUTHOR\tISBN\tCATEGORY\tPRICE\tSTOCK\tID")
	for i, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\t%d\t%s\n",
			i+1, b.Title, b.Author, b.ISBN, b.Category, b.Price, b.Stock, b.ID)
	}
	_ = tw.Flush()
}

func printBook(b models.Book) {
	fmt.Printf("%s\n  author: %s\n  isbn: %s\n  category: %s\n  price: %.2f\n  stock: %d\n",
		b.Title, b.Author, b.ISBN, b.Category, b.Price, b.Stock)
	if b.Description != "" {
		fmt.Printf("  description: %s\n", b.Description)
	}
	if b.ImageURL != "" {
		fmt.Printf("  image: %s\n", b.ImageURL)
	}
	if b.PublishedDate != nil {
		fmt.Printf("  published: %s\n", b.PublishedDate.Format("2006-01-02"))
	}
	fmt.Printf("  id: %s\n", b.ID)
}

func confirm(prompt string) bool {
	fmt.Printf("%s (y/N) ", prompt)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func failEnvelope(resp client.BookResponse) {
	fmt.Fprintln(os.Stderr, resp.Message)
	if len(resp.Error) > 0 {
		fmt.Fprintln(os.Stderr, string(resp.Error))
	}
	os.Exit(1)
}
