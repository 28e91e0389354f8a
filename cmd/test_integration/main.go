package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var baseURL = "http://localhost:8080"

func main() {
	if v := os.Getenv("FAQ_SERVER_URL"); v != "" {
		baseURL = v
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Health
	fmt.Println("1. Health check...")
	if !getOK("/health") {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	// 2. Welcome
	fmt.Println("2. Welcome route...")
	if !getOK("/") {
		fmt.Println("FAILED: Welcome route")
		os.Exit(1)
	}
	fmt.Println("PASSED: Welcome route")

	// 3. Curated answer
	fmt.Println("3. Curated FAQ answer...")
	answer := askFAQ("What is Code Ninjas and how does the franchise model work?")
	if !strings.Contains(answer, "STEM") {
		fmt.Printf("FAILED: Curated answer, got: %s\n", answer)
		os.Exit(1)
	}
	fmt.Println("PASSED: Curated FAQ answer")

	// 4. Menu short-circuit
	fmt.Println("4. Menu request...")
	answer = askFAQ("main menu")
	if answer == "" {
		fmt.Println("FAILED: Menu request returned empty answer")
		os.Exit(1)
	}
	fmt.Println("PASSED: Menu request")

	// 5. Unknown question still answers
	fmt.Println("5. Unknown question fallback...")
	answer = askFAQ("do ninjas ever compete in national robotics tournaments")
	if answer == "" {
		fmt.Println("FAILED: Fallback returned empty answer")
		os.Exit(1)
	}
	fmt.Printf("PASSED: Fallback answered: %s\n", answer)

	fmt.Println("Integration Test Completed Successfully!")
}

func getOK(path string) bool {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func askFAQ(question string) string {
	payload := map[string]string{"question": question}
	jsonData, _ := json.Marshal(payload)

	resp, err := http.Post(baseURL+"/faq", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return ""
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Status %d: %s\n", resp.StatusCode, string(body))
		return ""
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		fmt.Printf("Error decoding response: %v\n", err)
		return ""
	}
	return out.Answer
}
