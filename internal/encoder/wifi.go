// Package encoder converts typed form data into the exact text payloads
// scanner apps expect: WiFi config strings, vCard 3.0, iCalendar VEVENT and
// mailto/tel/sms URIs.
//
// Encoders are pure and never fail. Required fields are checked by the caller
// (see package validation) before an encoder is invoked; missing optional
// fields simply drop the corresponding line or parameter.
package encoder

import (
	"strings"

	"github.com/iudanet/qrninja/internal/models"
)

// wifiEscaper экранирует \ ; , : " обратным слешем
var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// WiFi encodes network credentials as WIFI:T:<enc>;S:<ssid>;P:<pass>;H:<bool>;;
// The P: field is omitted for open networks.
func WiFi(f models.WiFiForm) string {
	encryption := f.Encryption
	if encryption == "" {
		encryption = models.EncryptionWPA
	}

	hidden := "false"
	if f.Hidden {
		hidden = "true"
	}

	ssid := wifiEscaper.Replace(f.SSID)

	if encryption == models.EncryptionNoPass {
		return "WIFI:T:nopass;S:" + ssid + ";H:" + hidden + ";;"
	}

	return "WIFI:T:" + encryption + ";S:" + ssid + ";P:" + wifiEscaper.Replace(f.Password) + ";H:" + hidden + ";;"
}
