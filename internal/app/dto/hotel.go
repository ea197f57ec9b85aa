package dto

import domainhotel "staybook/internal/domain/hotel"

type UpsertHotelRequest struct {
	Name                   string  `json:"name"`
	Title                  string  `json:"title"`
	City                   string  `json:"city"`
	Address                string  `json:"address"`
	DistanceFromCityCenter float64 `json:"distance_from_city_center"`
}

type HotelResponse struct {
	ID                     int64   `json:"id"`
	Name                   string  `json:"name"`
	Title                  string  `json:"title"`
	City                   string  `json:"city"`
	Address                string  `json:"address"`
	DistanceFromCityCenter float64 `json:"distance_from_city_center"`
	Rating                 float64 `json:"rating"`
	NumberOfRatings        int     `json:"number_of_ratings"`
}

type HotelListResponse struct {
	Items []HotelResponse `json:"items"`
}

func MapHotel(h *domainhotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:                     int64(h.ID),
		Name:                   h.Name,
		Title:                  h.Title,
		City:                   h.City,
		Address:                h.Address,
		DistanceFromCityCenter: h.DistanceFromCenter,
		Rating:                 h.Rating,
		NumberOfRatings:        h.NumberOfRatings,
	}
}

func MapHotels(hs []domainhotel.Hotel) HotelListResponse {
	items := make([]HotelResponse, 0, len(hs))
	for i := range hs {
		items = append(items, MapHotel(&hs[i]))
	}
	return HotelListResponse{Items: items}
}
