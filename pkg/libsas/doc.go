//
// libsas is client that interacts with SimpleAuthStore API for storing user and shared data.
//

// Create client
//
//	client, err := libsas.NewDefaultClient(libsas.DefaultEndpoint)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Authenticate
//
//	session, err := client.Login("alice", "password42")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Read and write user data
//
//	_, err = client.WriteUserPublic(session.SessionID, "alice", `{"nickname":"Al"}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	user, err := client.ReadUser("alice", session.SessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Nickname:", user.PublicData["nickname"])
//
// Share an item
//
//	item, err := client.CreateSharedItem(session.SessionID, "groceries")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_, err = client.UpdateSharedItemValue(session.SessionID, item.SortKey, map[string]any{
//		"milk": 2,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Everyone can read it, even without a session.
//	_, err = client.ManageAccess(session.SessionID, libsas.Anyone, item.SortKey, libsas.GrantReader)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Errors
//
// All the operations return an *Error. Its Kind tells whether the call failed
// before any request (validation), in the HTTP client (transport), on the server
// side or because the response could not be parsed.
//
//	_, err = client.Login("alice", "wrong")
//	if libsas.IsKind(err, libsas.KindServer) {
//		fmt.Println(libsas.StatusCode(err), err)
//	}
package libsas
