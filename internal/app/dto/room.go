package dto

import domainroom "staybook/internal/domain/room"

type UpsertRoomRequest struct {
	HotelID     int64   `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Number      int     `json:"number"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
}

type RoomResponse struct {
	ID          int64   `json:"id"`
	HotelID     int64   `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Number      int     `json:"number"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
}

type RoomListResponse struct {
	Items []RoomResponse `json:"items"`
}

func MapRoom(r *domainroom.Room) RoomResponse {
	return RoomResponse{
		ID:          int64(r.ID),
		HotelID:     int64(r.HotelID),
		Name:        r.Name,
		Description: r.Description,
		Number:      r.Number,
		Price:       r.Price,
		Capacity:    r.Capacity,
	}
}

func MapRooms(rs []domainroom.Room) RoomListResponse {
	items := make([]RoomResponse, 0, len(rs))
	for i := range rs {
		items = append(items, MapRoom(&rs[i]))
	}
	return RoomListResponse{Items: items}
}
