package models

// Index is the payload carried by catalog/store events on the message
// channel. EntityType names the collection-level entity, Method mirrors
// the HTTP verb that caused the event.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id,omitempty"`
	ItemType   string `json:"item_type,omitempty"`
}
