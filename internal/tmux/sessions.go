package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchSessions lists the sessions of the server behind socketPath. The
// session hosting the calling client is flagged as current.
func FetchSessions(socketPath string) (SessionSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return SessionSnapshot{}, fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	sessions, err := client.ListSessions()
	if err != nil {
		return SessionSnapshot{}, fmt.Errorf("list sessions: %w", err)
	}
	attached := realAttachedClients(client)
	current := currentSessionName(client, attached)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		clients := attached[s.Name]
		out = append(out, Session{
			Name:     s.Name,
			Label:    sessionLabel(s.Name, s.Windows, len(clients) > 0),
			Attached: len(clients) > 0,
			Clients:  clients,
			Current:  s.Name == current,
			Windows:  s.Windows,
		})
	}
	return SessionSnapshot{Sessions: out, Current: current}, nil
}

// SwitchClient points the attached client at the target session.
func SwitchClient(socketPath, target string) error {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return fmt.Errorf("session target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()
	return client.SwitchClient(&gotmux.SwitchClientOptions{TargetSession: trimmed})
}

// ResolveSocketPath picks the tmux socket: explicit flag, POPUP_PICK_SOCKET,
// the socket in $TMUX, then the default socket under $TMUX_TMPDIR.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("POPUP_PICK_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func sessionLabel(name string, windows int, attached bool) string {
	label := fmt.Sprintf("%s: %d window", name, windows)
	if windows != 1 {
		label += "s"
	}
	if attached {
		label += " (attached)"
	}
	return label
}

// realAttachedClients maps session names to the non-control-mode clients
// attached to them. gotmuxcc's own control-mode connection is skipped.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func currentSessionName(client tmuxClient, attached map[string][]string) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if len(attached) == 1 {
		for name := range attached {
			return name
		}
	}
	return ""
}
