// Package fieldapi serves the number field engine over HTTP.
//
// A browser or any other remote surface owning a text box posts its
// keystrokes and commits; the API answers with the decision the local
// engine would make. Every request chooses its policy with "preset" (a name
// from the preset set), "config" (inline preset settings) or neither, in
// which case the server defaults apply with the separators of the request
// locale (?locale= or Accept-Language).
//
//	POST /keypress {"preset":"currency_de","text":"12","cursor":2,"rune":","}
//	-> {"data":{"action":"insert","accepted":true,"text":"12,","cursor":3,...}}
//
// Responses use a {"data":...,"error":{"code","message"}} envelope. An
// unparseable commit answers 422 with the unchanged previous text in data.
package fieldapi
