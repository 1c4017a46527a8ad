// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package main provides the uplexa CLI tool for deriving account keys and
// addresses from mnemonic seeds.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	uplexa "github.com/complex-gh/uplexa-go"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language string
	netName  string
	hidden   bool

	rootCmd = &cobra.Command{
		Use:   "uplexa [seed-phrase-or-hex]",
		Short: "Derive account keys and addresses from a mnemonic seed",
		Long: `Derive account keys and addresses from a mnemonic seed.

With no argument a fresh 25-word seed is generated from system randomness.
Passing a 12, 13, 24 or 25 word phrase (or the raw hex entropy) recovers an
existing seed; the 13th/25th word is validated as a checksum.

SECURITY TIP: Add a space before the command to prevent your seed phrase
from being saved in your shell history. Most shells (bash, zsh) are
configured to ignore commands that start with a space; check your
HISTCONTROL or HIST_IGNORE_SPACE settings.`,
		Example: `  uplexa
  uplexa --net stagenet
  uplexa --language spanish
  uplexa 48b1f3454d6c59e85bbbcb3673e5eef02a2a31bbcb4c0a5a4a1e0a389b736655
  uplexa word1 word2 ... word25
  uplexa --hidden
  echo "$SEED_PHRASE" | uplexa`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, net, err := seedFromInput(args)
			if err != nil {
				return formatError(err)
			}
			return printSeed(seed, net)
		},
	}

	major    uint32
	minor    uint32
	viewKey  string
	spendKey string

	addressCmd = &cobra.Command{
		Use:   "address [seed-phrase-or-hex]",
		Short: "Derive the subaddress for an (account, index) pair",
		Long: `Derive the deterministic subaddress for an account index (major) and an
address index within the account (minor). (0,0) is the master address.

The seed is taken from the argument, stdin or a hidden prompt like the root
command. Alternatively a view-only derivation is possible from the secret
view key and the public spend key alone (--view-key and --spend-key).`,
		Example: `  uplexa address --major 0 --minor 1 word1 ... word25
  uplexa address --major 2 --minor 17 --net testnet 48b1f3...6655
  uplexa address --major 0 --minor 1 --view-key <hex> --spend-key <hex>`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := uplexa.ParseNetwork(netName)
			if err != nil {
				return formatError(err)
			}

			if viewKey != "" || spendKey != "" {
				if viewKey == "" || spendKey == "" {
					return formatError(fmt.Errorf("--view-key and --spend-key must be given together"))
				}
				addr, err := uplexa.DeriveSubaddress(viewKey, spendKey, major, minor, net)
				if err != nil {
					return formatError(err)
				}
				fmt.Println(addr)
				return nil
			}

			seed, _, err := seedFromInput(args)
			if err != nil {
				return formatError(err)
			}
			addr, err := seed.Subaddress(major, minor, net)
			if err != nil {
				return formatError(err)
			}
			fmt.Println(addr)
			return nil
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate <address>",
		Short: "Validate an address and print its components",
		Example: `  uplexa validate 4AdUndXHHZ6cfufTMvppY6JwXNouMBzSkbLYfpAV5Usx3skxNgYeYTRj5UzqtReoS44qo9mtmXCqY45DJ852K5Jv2684Rge
  uplexa validate --net testnet <address>`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := uplexa.ParseAddress(args[0])
			if err != nil {
				return formatError(err)
			}
			if cmd.Flags().Changed("net") {
				net, err := uplexa.ParseNetwork(netName)
				if err != nil {
					return formatError(err)
				}
				if addr.Network() != net {
					return formatError(fmt.Errorf("address is on %s, not %s", addr.Network(), net))
				}
			}
			kind := "master address"
			if addr.IsSubaddress() {
				kind = "subaddress"
			}
			fmt.Printf("%s on %s\n", kind, addr.Network())
			fmt.Printf("public spend key: %s\n", addr.SpendKey())
			fmt.Printf("public view key:  %s\n", addr.ViewKey())
			return nil
		},
	}

	languagesCmd = &cobra.Command{
		Use:          "languages",
		Short:        "List supported wordlist languages",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range uplexa.Languages() {
				fmt.Println(name)
			}
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex (complex@ft.hn)\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for uplexa.

To load completions:

Bash:
  $ source <(uplexa completion bash)

Zsh:
  $ uplexa completion zsh > "${fpath[1]}/_uplexa"

Fish:
  $ uplexa completion fish | source

PowerShell:
  PS> uplexa completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Wordlist language")
	rootCmd.PersistentFlags().StringVarP(&netName, "net", "n", "mainnet", "Network: mainnet, testnet or stagenet")
	rootCmd.PersistentFlags().BoolVar(&hidden, "hidden", false, "Prompt for the seed phrase without echoing it")
	addressCmd.Flags().Uint32Var(&major, "major", 0, "Account index")
	addressCmd.Flags().Uint32Var(&minor, "minor", 0, "Address index within the account")
	addressCmd.Flags().StringVar(&viewKey, "view-key", "", "Secret view key (hex) for view-only derivation")
	addressCmd.Flags().StringVar(&spendKey, "spend-key", "", "Public spend key (hex) for view-only derivation")
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// seedFromInput builds a Seed from command arguments, piped stdin, a hidden
// prompt, or — when nothing is supplied — fresh system randomness.
func seedFromInput(args []string) (*uplexa.Seed, uplexa.Network, error) {
	net, err := uplexa.ParseNetwork(netName)
	if err != nil {
		return nil, "", err
	}
	wordlist, err := uplexa.GetWordlist(language)
	if err != nil {
		return nil, "", err
	}

	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" && hidden {
		secret, err := readSecret("Enter seed phrase or hex: ")
		if err != nil {
			return nil, "", err
		}
		input = strings.TrimSpace(string(secret))
	}
	if input == "" {
		if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				input = strings.TrimSpace(scanner.Text())
			}
		}
	}

	var seed *uplexa.Seed
	switch {
	case input == "":
		seed, err = uplexa.NewSeed(wordlist)
	case isHex(input):
		seed, err = uplexa.NewSeedFromHex(input, wordlist)
	default:
		seed, err = uplexa.NewSeedFromPhrase(input, wordlist)
	}
	if err != nil {
		return nil, "", err
	}
	return seed, net, nil
}

// isHex reports whether s is a single run of hex characters, i.e. raw
// entropy rather than a phrase.
func isHex(s string) bool {
	if strings.ContainsRune(s, ' ') {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return len(s) > 0
}

func printSeed(seed *uplexa.Seed, net uplexa.Network) error {
	addr, err := seed.Address(net)
	if err != nil {
		return formatError(err)
	}

	words := len(strings.Fields(seed.Phrase()))
	fmt.Printf("[%d word seed phrase (%s)]\n", words, seed.Wordlist().Name())
	fmt.Println()
	fmt.Println(seed.Phrase())
	fmt.Println()

	fmt.Printf("[keys]\n")
	fmt.Println()
	fmt.Printf("%s (secret spend key)\n", seed.SecretSpendKey())
	fmt.Printf("%s (secret view key)\n", seed.SecretViewKey())
	fmt.Printf("%s (public spend key)\n", seed.PublicSpendKey())
	fmt.Printf("%s (public view key)\n", seed.PublicViewKey())
	fmt.Println()

	fmt.Printf("[master address (%s)]\n", net)
	fmt.Println()
	fmt.Println(addr)
	return nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError displays a styled error block on a terminal and returns a plain
// error so the command exits with a non-zero code.
func formatError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

func readSecret(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	defer fmt.Fprintf(os.Stderr, "\n")
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                       //nolint: errcheck
	secret, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read seed: %w", err)
	}
	return secret, nil
}
