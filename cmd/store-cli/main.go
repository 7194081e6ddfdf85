// Command store-cli runs an interactive text menu against the in-memory
// store: list products, show total stock, and place multi-item orders.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/N123p/bestbuy2/internal/catalog"
	"github.com/N123p/bestbuy2/internal/domain/product"
	"github.com/N123p/bestbuy2/internal/domain/store"
)

func main() {
	products, err := catalog.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build catalog: %v\n", err)
		os.Exit(1)
	}
	st := store.New(products, store.PolicyCommitPerLine)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("   Store Menu")
		fmt.Println("   ----------")
		fmt.Println("1. List all products in store")
		fmt.Println("2. Show total amount in store")
		fmt.Println("3. Make an order")
		fmt.Println("4. Quit")

		choice := prompt(in, "Please choose a number: ")
		switch choice {
		case "1":
			listProducts(st)
		case "2":
			fmt.Printf("Total of %d items in store\n", st.TotalQuantity())
		case "3":
			makeOrder(in, st)
		case "4", "":
			return
		default:
			fmt.Println("Invalid choice. Please select a number from the menu.")
		}
	}
}

// prompt prints label and reads one trimmed line. Returns "" on EOF.
func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func listProducts(st *store.Store) {
	fmt.Println("------")
	for i, p := range st.ActiveProducts() {
		fmt.Printf("%d. %s\n", i+1, p.Show())
	}
	fmt.Println("------")
}

// makeOrder builds a shopping list from numbered prompts and places the
// whole order at once, printing the total or the first failing line's error.
func makeOrder(in *bufio.Scanner, st *store.Store) {
	products := st.ActiveProducts()

	listProducts(st)
	fmt.Println("When you want to finish the order, enter empty text.")

	var lines []store.Line
	for {
		productInput := prompt(in, "Which product # do you want? ")
		if productInput == "" {
			break
		}
		index, err := strconv.Atoi(productInput)
		if err != nil || index < 1 || index > len(products) {
			fmt.Println("Invalid product number. Please select a number from the list.")
			continue
		}

		quantityInput := prompt(in, "What amount do you want? ")
		if quantityInput == "" {
			break
		}
		quantity, err := strconv.Atoi(quantityInput)
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid quantity.")
			continue
		}

		lines = append(lines, store.Line{Product: products[index-1], Quantity: quantity})
		fmt.Println("Product added to list!")
	}

	if len(lines) == 0 {
		return
	}

	total, err := st.Order(lines)
	if err != nil {
		reportOrderError(err)
		return
	}
	fmt.Printf("********\nOrder made! Total payment: $%s\n********\n", total)
}

// reportOrderError prints a human-readable message for each error kind the
// order core can raise.
func reportOrderError(err error) {
	var stockErr *product.InsufficientStockError
	if errors.As(err, &stockErr) {
		fmt.Printf("Insufficient stock: %v\n", err)
		return
	}
	fmt.Printf("Error in processing order: %v\n", err)
}
