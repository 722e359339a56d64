package cli

const recordTemplate = `
=== {{ label .Type }} QR Code ===

ID:       {{ .ID }}
Created:  {{ .CreatedAt.Format "2006-01-02 15:04:05" }} ({{ ago .CreatedAt }})
{{- if modified . }}
Modified: {{ .LastModifiedAt.Format "2006-01-02 15:04:05" }} ({{ ago .LastModifiedAt }})
{{- end }}
Colors:   {{ .Style.ForegroundColor }} on {{ .Style.BackgroundColor }}
Size:     {{ .Style.Dimensions }}px, margin {{ .Style.QuietZone }}, error correction {{ .Style.ErrorCorrection }}
{{- with .Logo }}
Logo:     {{ .Position }}, {{ .SizePercent }}%, padding {{ .PaddingPixels }}px ({{ bytes (len .ImageData) }})
{{- end }}
{{- with .Frame }}
Frame:    {{ .Style }}{{ with .Color }} {{ . }}{{ end }}{{ with .CaptionText }}, caption "{{ . }}"{{ end }}
{{- end }}

Payload:
---
{{ .Payload }}
---
`

const listTemplate = `
=== {{ .Title }} ===
{{ if eq (len .Records) 0 }}
No QR codes found.
{{- with .Hint }}

{{ . }}
{{- end }}
{{ else }}
Found {{ len .Records }} QR code(s):
{{ range .Records }}
- {{ label .Type }}: {{ preview .Payload }}
   ID:      {{ .ID }}
   Created: {{ ago .CreatedAt }}{{ if modified . }}, edited {{ ago .LastModifiedAt }}{{ end }}
{{- end }}

Use 'qrninja get <id>' to view details. A unique ID prefix is enough.
{{ end -}}
`

const templatesTemplate = `
=== Style Templates ===
{{ range . }}
- {{ printf "%-10s" .ID }} {{ printf "%-12s" .Name }} {{ .Foreground }} on {{ .Background }} {{ .Preview }}
{{- end }}

Use 'qrninja add <type> --template <id>' or 'template <id>' in the editor.
`

const customizationTemplate = `Colors:   {{ .Style.ForegroundColor }} on {{ .Style.BackgroundColor }}
Size:     {{ .Style.Dimensions }}px, margin {{ .Style.QuietZone }}, error correction {{ .Style.ErrorCorrection }}
Logo:     {{ with .Logo }}{{ .Position }}, {{ .SizePercent }}%, padding {{ .PaddingPixels }}px{{ else }}none{{ end }}
Frame:    {{ with .Frame }}{{ .Style }}{{ with .CaptionText }}, caption "{{ . }}" ({{ $.Frame.CaptionPosition }}){{ end }}{{ else }}none{{ end }}
`

const editHelp = `Commands:
  show                     Show current settings
  content                  Edit the encoded content
  template <id>            Apply a color template
  colors                   Set background and foreground colors
  ec <L|M|Q|H>             Set error correction level
  size <pixels>            Set size, 128 to 2048
  margin <modules>         Set quiet zone, 0 to 10
  logo <path>|none         Set or remove the logo
  frame                    Set frame and caption
  save                     Save changes and exit
  cancel                   Discard changes and exit`

const versionTemplate = `qrninja
Version:    {{ .Version }}
Build Date: {{ .BuildDate }}
Git Commit: {{ .GitCommit }}
`
