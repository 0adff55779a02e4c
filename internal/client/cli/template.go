package cli

const statusTemplate = `
=== Room Status ===

Transport: {{.Transport}}
State:     {{.State}}
{{- if .RoomID }}
Room ID:   {{.RoomID}}
Version:   {{.Version}}
You:       {{.Self.Name}} ({{.Self.ID}})

Participants ({{len .Participants}}):
{{- range .Participants }}
  - {{.Name}}{{if .IsHost}} (host){{end}}, joined {{.JoinedAt.Format "2006-01-02 15:04:05"}}
{{- end}}
{{- end}}
{{- if .Pending }}

Pending writes ({{len .Pending}}):
{{- range .Pending }}
  - {{.DataType}}: {{.Attempts}} attempt(s), based on version {{.BaseVersion}}
{{- end}}
{{- end}}
{{- if .Logs }}

Recent sync activity:
{{- range .Logs }}
  {{.At.Format "15:04:05"}} {{.Direction}} {{.DataType}}{{if .Version}} v{{.Version}}{{end}}{{if .OK}} ok{{else}} failed: {{.Error}}{{end}}
{{- end}}
{{- end}}
`
