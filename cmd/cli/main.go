package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankledger-cli",
		Short: "BankLedger CLI tool",
		Long:  `A command line interface for interacting with the BankLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BankLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	createAccountCmd := &cobra.Command{
		Use:   "create <user-id>",
		Short: "Create an account for a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			userID := parseID(args[0], "user-id")
			postJSON("/api/v1/accounts", map[string]any{"user_id": userID}, http.StatusCreated)
		},
	}

	getAccountCmd := &cobra.Command{
		Use:   "get <account-id>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0], "account-id")
			getJSON(fmt.Sprintf("/api/v1/accounts/%d", id))
		},
	}

	var statementLimit, statementOffset int
	statementCmd := &cobra.Command{
		Use:   "statement <account-id>",
		Short: "Show an account's entries, newest first",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0], "account-id")
			getJSON(fmt.Sprintf("/api/v1/accounts/%d/entries?limit=%d&offset=%d", id, statementLimit, statementOffset))
		},
	}
	statementCmd.Flags().IntVar(&statementLimit, "limit", 20, "Max entries to return")
	statementCmd.Flags().IntVar(&statementOffset, "offset", 0, "Entries to skip")

	var newStatus string
	setStatusCmd := &cobra.Command{
		Use:   "set-status <account-id>",
		Short: "Change an account's status",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0], "account-id")
			patchJSON(fmt.Sprintf("/api/v1/accounts/%d/status", id), map[string]any{"status": newStatus})
		},
	}
	setStatusCmd.Flags().StringVar(&newStatus, "status", "", "New status: active, inactive or blocked")
	setStatusCmd.MarkFlagRequired("status")

	accountCmd.AddCommand(createAccountCmd, getAccountCmd, statementCmd, setStatusCmd)
	rootCmd.AddCommand(accountCmd)

	// Deposit command
	var depositDescription string
	depositCmd := &cobra.Command{
		Use:   "deposit <account-id> <value>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			accountID := parseID(args[0], "account-id")
			postJSON("/api/v1/deposits", map[string]any{
				"account_id":  accountID,
				"value":       args[1],
				"description": depositDescription,
			}, http.StatusCreated)
		},
	}
	depositCmd.Flags().StringVar(&depositDescription, "description", "", "Entry description")
	rootCmd.AddCommand(depositCmd)

	// Transfer commands
	var transferDescription string
	transferCmd := &cobra.Command{
		Use:   "transfer <origin-account-id> <destination-account-id> <value>",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			originID := parseID(args[0], "origin-account-id")
			destinationID := parseID(args[1], "destination-account-id")
			postJSON("/api/v1/transfers", map[string]any{
				"origin_account_id":      originID,
				"destination_account_id": destinationID,
				"value":                  args[2],
				"description":            transferDescription,
			}, http.StatusCreated)
		},
	}
	transferCmd.Flags().StringVar(&transferDescription, "description", "", "Entry description")
	rootCmd.AddCommand(transferCmd)

	reverseCmd := &cobra.Command{
		Use:   "reverse <send-entry-id>",
		Short: "Reverse a transfer by its send entry id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			entryID := parseID(args[0], "send-entry-id")
			postJSON(fmt.Sprintf("/api/v1/transfers/%d/reverse", entryID), nil, http.StatusCreated)
		},
	}
	rootCmd.AddCommand(reverseCmd)

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(ledgerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func parseID(raw, name string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Printf("Invalid %s: %s\n", name, raw)
		os.Exit(1)
	}

	return id
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp, http.StatusOK)
}

func postJSON(path string, payload map[string]any, expected int) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", body)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp, expected)
}

func patchJSON(path string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPatch, baseURL+path, bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp, http.StatusOK)
}

func printResponse(resp *http.Response, expected int) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != expected {
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

func checkConsistency() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Consistency check PASSED\n")
	if consistent, ok := result["consistent"].(bool); ok {
		fmt.Printf("Consistent: %v\n", consistent)
	}
}
