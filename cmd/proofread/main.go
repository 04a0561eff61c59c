// Command proofread checks PDF and DOCX documents for Indonesian spelling
// and typing errors using a Gemini model.
//
// Usage:
//
//	proofread check naskah.pdf --out hasil.xlsx
//	proofread serve --addr :8080
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
