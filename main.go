// Command portfolio serves the personal portfolio site and exports its
// downloadable text files.
package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site",
	Long:          "Serves a six-section portfolio dashboard (Home, About, Skills, Projects, Experience, Contact) and exports its resume and project files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
