// Package modio provides a Go client SDK for the mod.io REST API,
// a hosting service for game modifications.
//
// Read access needs only an API key generated on the mod.io website; write
// access and the /me endpoints need an OAuth2 access token, obtained through
// the email authentication flow or Steam authentication.
//
// Basic usage:
//
//	client, err := modio.New(modio.WithAPIKey("your-api-key"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	game, err := client.GetGame(ctx, 345)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mods, _, err := game.Mods(ctx, modio.NewFilter().Text("overhaul"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Obtaining an access token by email:
//
//	if _, err := client.EmailRequest(ctx, "necro@mordor.com"); err != nil {
//	    log.Fatal(err)
//	}
//	// the user reads the 5-digit code from their inbox
//	token, err := client.EmailExchange(ctx, code)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// the SDK never persists tokens; store it for the next session
//	if err := modio.SaveAccessToken("modio-token", token); err != nil {
//	    log.Fatal(err)
//	}
package modio
