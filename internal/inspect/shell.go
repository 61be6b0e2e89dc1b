package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// EnvName turns an enumeration name such as "roll-call" into a variable name
// such as "ROLL_CALL". An explicit name wins when set.
func EnvName(name string, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name))
}

// Export renders an assignment of value to the variable name in the given
// shell dialect. persist selects the form that outlives the current session
// (export on sh, the user environment on powershell, setx on cmd).
func Export(shell ShellType, name string, value string, persist bool) (string, error) {
	switch shell {
	case ShellTypeSh:
		if persist {
			return fmt.Sprintf("export %s=%s", name, shLiteral(value)), nil
		}
		return fmt.Sprintf("%s=%s", name, shLiteral(value)), nil
	case ShellTypePowershell:
		if persist {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", psQuote(name), powershellLiteral(value)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", name, powershellLiteral(value)), nil
	case ShellTypeCmd:
		lit := cmdLiteral(value)
		if persist {
			return fmt.Sprintf("setx %s \"%s\"", name, lit), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", name, strings.Trim(lit, `"`)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shell)
	}
}

// splitLines splits s around line breaks, keeping each "\r\n", "\r" or "\n"
// as its own element: "a\r\nb\nc" -> ["a", "\r\n", "b", "\n", "c"].
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\r' && s[i] != '\n' {
			continue
		}
		if start < i {
			parts = append(parts, s[start:i])
		}
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i++
		} else {
			parts = append(parts, s[i:i+1])
		}
		start = i + 1
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// shLiteral single-quotes s; line breaks are legal inside single quotes.
func shLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// powershellLiteral builds a single expression joined with '+', with line
// breaks written as double-quoted escapes.
func powershellLiteral(s string) string {
	var out []string
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, psQuote(p))
		}
	}
	return strings.Join(out, " + ")
}

func cmdLiteral(s string) string {
	var b strings.Builder
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			b.WriteString(`"\\n"`)
		case "\r":
			b.WriteString(`"\\r"`)
		case "\r\n":
			b.WriteString(`"\\r\\n"`)
		default:
			b.WriteString(`"` + strings.ReplaceAll(p, `"`, `\"`) + `"`)
		}
	}
	return b.String()
}

// ResolveShell returns shell unchanged unless it is ShellTypeAuto, in which
// case the invoking shell is detected and mapped to a dialect.
func ResolveShell(shell ShellType) (ShellType, error) {
	if shell != ShellTypeAuto {
		if !shell.IsAShellType() {
			return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shell)
		}
		return shell, nil
	}
	name, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	return dialectOf(name), nil
}

func dialectOf(shellName string) ShellType {
	switch strings.TrimSuffix(strings.ToLower(shellName), ".exe") {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "dash", "tcsh", "csh", "sh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks the parent process chain looking for a known shell.
// $SHELL and %COMSPEC% only name the login shell, so they are the fallback.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err == nil {
		seen := map[int32]bool{}
		for p != nil && !seen[p.Pid] {
			seen[p.Pid] = true
			name, _ := p.Name()
			if name == "" {
				if exe, _ := p.Exe(); exe != "" {
					name = filepath.Base(exe)
				}
			}
			base := strings.TrimSuffix(strings.ToLower(name), ".exe")
			for _, known := range knownShells {
				if base == known || strings.HasSuffix(base, known) {
					return name, nil
				}
			}
			parent, err := p.Parent()
			if err != nil {
				break
			}
			p = parent
		}
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}
