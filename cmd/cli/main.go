package main

import (
	"bytes"
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
		Use:   "ledger-cli",
		Short: "Ledger service CLI tool",
		Long:  `A command line interface for interacting with the ledger service API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger service API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var accountName, accountType string
	accountCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts/", map[string]string{
				"name": accountName,
				"type": accountType,
			})
		},
	}
	accountCreateCmd.Flags().StringVar(&accountName, "name", "", "Account name")
	accountCreateCmd.Flags().StringVar(&accountType, "type", "", "Account type (ASSET, LIABILITY, REVENUE, EXPENSE)")
	accountCreateCmd.MarkFlagRequired("name")
	accountCreateCmd.MarkFlagRequired("type")

	accountGetCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an account with its balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0])
		},
	}

	accountListCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/")
		},
	}

	accountBalanceCmd := &cobra.Command{
		Use:   "balance <id>",
		Short: "Get an account's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	accountTransactionsCmd := &cobra.Command{
		Use:   "transactions <id>",
		Short: "List an account's transactions, newest first",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}

	accountCmd.AddCommand(accountCreateCmd, accountGetCmd, accountListCmd, accountBalanceCmd, accountTransactionsCmd)

	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction operations",
	}

	var transactionFile string
	transactionPostCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a transaction from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			payload, err := os.ReadFile(transactionFile)
			if err != nil {
				fmt.Printf("Error reading file: %v\n", err)
				os.Exit(1)
			}
			postRaw("/api/v1/transactions/", payload)
		},
	}
	transactionPostCmd.Flags().StringVar(&transactionFile, "file", "", "Path to a JSON transaction payload")
	transactionPostCmd.MarkFlagRequired("file")

	transactionGetCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a transaction with its entries",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/transactions/" + args[0])
		},
	}

	transactionCmd.AddCommand(transactionPostCmd, transactionGetCmd)

	rootCmd.AddCommand(accountCmd, transactionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func post(path string, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	postRaw(path, payload)
}

func postRaw(path string, payload []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
