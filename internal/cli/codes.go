package cli

import (
	"fmt"
	"math/bits"

	"github.com/spf13/cobra"

	"github.com/dominopress/dominopress/pkg/domino"
)

// codesOpts holds the command-line flags for the codes command.
type codesOpts struct {
	list  bool // print every valid code
	limit int  // cap the listing; 0 means all
}

// newCodesCmd creates the codes command for inspecting the valid code
// population. Without arguments it prints population statistics; with a
// hex code argument it inspects that single code; --list enumerates the
// whole deck.
func newCodesCmd() *cobra.Command {
	var opts codesOpts

	cmd := &cobra.Command{
		Use:   "codes [code]",
		Short: "Inspect the valid code population",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runCodesShow(args[0])
			}
			return runCodes(&opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "list every valid code")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "cap the listing at N codes (0 = all)")

	return cmd
}

// runCodes prints deck statistics and, with --list, the enumerated codes.
func runCodes(opts *codesOpts) error {
	deck := domino.Default()
	candidates := payloadCombinations()

	fmt.Println(StyleTitle.Render("Code population"))
	printKeyValue("payload bits", fmt.Sprintf("%d (%d combinations)", domino.PayloadBits, 1<<domino.PayloadBits))
	printKeyValue("payload pips", fmt.Sprintf("%d per code", domino.PayloadPips))
	printKeyValue("candidates", fmt.Sprintf("%d", candidates))
	printKeyValue("palindromes", fmt.Sprintf("%d rejected", candidates-deck.Size()))
	printKeyValue("valid codes", fmt.Sprintf("%d", deck.Size()))

	if !opts.list {
		return nil
	}

	fmt.Println()
	codes := deck.Codes()
	if opts.limit > 0 && opts.limit < len(codes) {
		codes = codes[:opts.limit]
	}
	for _, c := range codes {
		fmt.Println("  " + StyleNumber.Render(c.String()) + "  " + StyleDim.Render(sketchLine(c)))
	}
	if opts.limit > 0 && opts.limit < deck.Size() {
		printDetail("… %d more", deck.Size()-opts.limit)
	}
	return nil
}

// payloadCombinations counts the payload patterns with exactly the
// required number of set pips, the candidate pool before palindrome
// rejection.
func payloadCombinations() int {
	count := 0
	for p := 0; p < 1<<domino.PayloadBits; p++ {
		if bits.OnesCount(uint(p)) == domino.PayloadPips {
			count++
		}
	}
	return count
}

// runCodesShow inspects a single code given as a hex literal.
func runCodesShow(arg string) error {
	code, err := domino.ParseCode(arg)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(code.String()))
	printKeyValue("column 0", fmt.Sprintf("%08b", code.Column(0)))
	printKeyValue("column 1", fmt.Sprintf("%08b", code.Column(1)))
	printKeyValue("payload pips", fmt.Sprintf("%d", code.PayloadCount()))

	if code.Valid() {
		printSuccess("valid code")
	} else {
		printWarning("not a valid code")
	}

	fmt.Println()
	for _, row := range sketchRows(code) {
		fmt.Println("  " + row)
	}
	fmt.Println()
	return nil
}
