package engine

// Connect starts the reconnecting transport under the given nickname
// (§4.1). It is safe to call again with a different nickname before any
// Disconnect; the transport updates the identity used on its next dial.
func (e *Engine) Connect(nickname string) {
	e.transport.Connect(nickname)
}

// Disconnect tears down the session explicitly (§4.1, §7): unlike a
// transport-level drop, this clears the store's connection-scoped state
// via Store.Disconnect rather than merely flipping connected to false.
func (e *Engine) Disconnect() {
	e.transport.Disconnect()
	e.store.Disconnect()
}
