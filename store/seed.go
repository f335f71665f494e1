package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/riquelima/gourmetgo/models"
)

// Seed loads the fixture data the mock environment ships with: the staff
// accounts, the menu, a handful of orders in mixed statuses and the
// settings record. Seeding an already-populated database is a no-op.
func (s *Store) Seed(staffPassword string) error {
	var userCount int64
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users := []models.User{
		{ID: "admin-user-id", Email: "admin@gourmetgo.com", Role: models.RoleAdmin, Name: "Admin User", PasswordHash: string(hash)},
		{ID: "attendant-user-id", Email: "attendant@gourmetgo.com", Role: models.RoleAttendant, Name: "Attendant User", PasswordHash: string(hash)},
	}
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{ID: "cat1", Name: "Entradas"},
		{ID: "cat2", Name: "Pratos Principais"},
		{ID: "cat3", Name: "Sobremesas"},
		{ID: "cat4", Name: "Bebidas"},
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return err
	}

	dishes := []models.Dish{
		{ID: "dish1", Name: "Bruschetta Clássica", Description: "Pão italiano tostado com tomates frescos, alho, manjericão e azeite extra virgem.", Price: 25.00, ImageURL: "https://picsum.photos/seed/dish1/400/300", Available: true, CategoryID: "cat1"},
		{ID: "dish2", Name: "Salada Caprese", Description: "Fatias de tomate fresco, mussarela de búfala e manjericão, regados com azeite balsâmico.", Price: 30.00, ImageURL: "https://picsum.photos/seed/dish2/400/300", Available: true, CategoryID: "cat1"},
		{ID: "dish3", Name: "Filé Mignon ao Molho Madeira", Description: "Medalhões de filé mignon grelhados, cobertos com molho madeira e acompanhados de risoto de parmesão.", Price: 75.00, ImageURL: "https://picsum.photos/seed/dish3/400/300", Available: true, CategoryID: "cat2"},
		{ID: "dish4", Name: "Salmão Grelhado com Legumes", Description: "Posta de salmão fresco grelhado na perfeição, servido com uma seleção de legumes da estação.", Price: 68.00, ImageURL: "https://picsum.photos/seed/dish4/400/300", Available: true, CategoryID: "cat2"},
		{ID: "dish5", Name: "Risoto de Camarão", Description: "Arroz arbóreo cremoso com camarões frescos, tomate cereja e um toque de limão siciliano.", Price: 72.00, ImageURL: "https://picsum.photos/seed/dish5/400/300", Available: true, CategoryID: "cat2"},
		{ID: "dish6", Name: "Tiramisù Italiano", Description: "Sobremesa italiana clássica com camadas de biscoitos champagne embebidos em café, creme de mascarpone e cacau em pó.", Price: 35.00, ImageURL: "https://picsum.photos/seed/dish6/400/300", Available: true, CategoryID: "cat3"},
		{ID: "dish7", Name: "Petit Gateau com Sorvete", Description: "Bolo de chocolate com interior cremoso, servido quente com uma bola de sorvete de creme.", Price: 32.00, ImageURL: "https://picsum.photos/seed/dish7/400/300", Available: true, CategoryID: "cat3"},
		{ID: "dish8", Name: "Água Mineral (500ml)", Description: "Água mineral natural sem gás.", Price: 5.00, ImageURL: "https://picsum.photos/seed/dish8/400/300", Available: true, CategoryID: "cat4"},
		{ID: "dish9", Name: "Refrigerante Lata (350ml)", Description: "Coca-Cola, Guaraná Antarctica ou Fanta Laranja.", Price: 7.00, ImageURL: "https://picsum.photos/seed/dish9/400/300", Available: true, CategoryID: "cat4"},
		{ID: "dish10", Name: "Suco Natural (300ml)", Description: "Laranja, Limão, Abacaxi com Hortelã.", Price: 10.00, ImageURL: "https://picsum.photos/seed/dish10/400/300", Available: true, CategoryID: "cat4"},
	}
	if err := s.db.Create(&dishes).Error; err != nil {
		return err
	}

	now := s.now()
	orders := []models.Order{
		{
			ID: "order1", CustomerName: "João Silva", CustomerPhone: "11999998888",
			CustomerAddress: "Rua das Flores, 123, São Paulo",
			Items: []models.CartItem{
				{Dish: dishes[2], Quantity: 1},
				{Dish: dishes[6], Quantity: 1},
			},
			Status: models.OrderStatusDelivered, TotalAmount: 110.00,
			Notes: "Entregar na portaria.", CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: "order2", CustomerName: "Maria Oliveira", CustomerPhone: "21988887777",
			CustomerAddress: "Avenida Copacabana, 456, Rio de Janeiro",
			Items: []models.CartItem{
				{Dish: dishes[3], Quantity: 2},
			},
			Status: models.OrderStatusSent, TotalAmount: 136.00,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "order3", CustomerName: "Carlos Pereira", CustomerPhone: "31977776666",
			CustomerAddress: "Praça da Liberdade, 789, Belo Horizonte",
			Items: []models.CartItem{
				{Dish: dishes[0], Quantity: 1},
				{Dish: dishes[4], Quantity: 1},
				{Dish: dishes[8], Quantity: 2},
			},
			Status: models.OrderStatusPreparing, TotalAmount: 111.00,
			CreatedAt: now,
		},
		{
			ID: "order4", CustomerName: "Ana Costa", CustomerPhone: "51966665555",
			CustomerAddress: "Rua dos Andradas, 101, Porto Alegre",
			Items: []models.CartItem{
				{Dish: dishes[1], Quantity: 1},
			},
			Status: models.OrderStatusNew, TotalAmount: 30.00,
			Notes: "Sem cebola, por favor.", CreatedAt: now.Add(time.Minute),
		},
	}
	if err := s.db.Create(&orders).Error; err != nil {
		return err
	}

	settings := models.AppSettings{
		ID:                1,
		OpeningTime:       "09:00",
		ClosingTime:       "23:00",
		IsStoreOpenManual: true,
		DeliveryFeeFixed:  5.00,
	}
	return s.db.Create(&settings).Error
}
