package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// Patterns over cobra's default usage text, matched line by line.
var (
	helpSectionRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	helpCommandRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	helpFlagRe    = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	helpFooterRe  = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's default help through the color styles:
// section headers in the info color, command and flag names highlighted,
// the footer muted.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var out strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			out.WriteString(styleHelpLine(line))
			out.WriteString("\n")
		}
		cmd.Print(strings.TrimRight(out.String(), "\n") + "\n")
	}
}

func styleHelpLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if helpSectionRe.MatchString(trimmed) {
		return Info(line)
	}
	if helpFooterRe.MatchString(trimmed) {
		return Silent(line)
	}
	if m := helpFlagRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := helpCommandRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
