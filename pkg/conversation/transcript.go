package conversation

import (
	"strings"
)

const transcriptTimeLayout = "15:04"

// Transcript renders messages as plain text, one block per message.
// Continuation lines of multi-line messages are indented under the label.
func Transcript(msgs []Message) string {
	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n")
		}
		prefix := "[" + msg.Timestamp.Format(transcriptTimeLayout) + "] " + msg.Sender.String() + ": "
		indent := strings.Repeat(" ", len(prefix))

		lines := strings.Split(strings.ReplaceAll(msg.Text, "\r\n", "\n"), "\n")
		for j, line := range lines {
			if j == 0 {
				sb.WriteString(prefix)
			} else {
				sb.WriteString(indent)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
