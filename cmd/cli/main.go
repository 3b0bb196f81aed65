package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "books-cli",
		Short: "Accounting engine CLI tool",
		Long:  `A command line interface for interacting with the accounting API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the accounting API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/accounts/")
		},
	})
	rootCmd.AddCommand(accountsCmd)

	// Report commands
	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "Report operations",
	}
	reportsCmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Full balance summary",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/reports/summary")
		},
	})
	reportsCmd.AddCommand(&cobra.Command{
		Use:   "equation",
		Short: "Verify the accounting equation",
		Run: func(cmd *cobra.Command, args []string) {
			checkEquation()
		},
	})
	reportsCmd.AddCommand(&cobra.Command{
		Use:   "ledger-check",
		Short: "Total the debit and credit sides of the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/reports/ledger-check")
		},
	})
	rootCmd.AddCommand(reportsCmd)

	// Recurring commands
	recurringCmd := &cobra.Command{
		Use:   "recurring",
		Short: "Recurring schedule operations",
	}
	recurringCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Post all due recurring schedules",
		Run: func(cmd *cobra.Command, args []string) {
			runRecurring()
		},
	})
	rootCmd.AddCommand(recurringCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getAndPrint(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}

func checkEquation() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/reports/equation")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Equation check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	balanced, _ := result["is_balanced"].(bool)
	if balanced {
		fmt.Println("Accounting equation BALANCED")
	} else {
		fmt.Println("Accounting equation OUT OF BALANCE")
	}
	fmt.Printf("Assets: %v\nLiabilities: %v\nEquity: %v\nDifference: %v\n",
		result["assets"], result["liabilities"], result["equity"], result["difference"])

	if !balanced {
		os.Exit(1)
	}
}

func runRecurring() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/recurring/run", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Recurring run failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Posted %v transactions\n", result["posted"])
}
