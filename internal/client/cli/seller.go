package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
)

// AddProduct walks the seller through listing a new item. Images are read
// from local paths and attached as multipart file parts; the listing goes
// live once an admin approves it.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	typ, err := getSimpleText(a.reader, "Type (book/clothes)", os.Stdout)
	if err != nil {
		return err
	}
	if models.ProductType(typ) != models.ProductBook && models.ProductType(typ) != models.ProductClothes {
		fmt.Fprintln(a.out, "Type must be book or clothes")
		return nil
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	condition, err := getSimpleText(a.reader, "Condition", os.Stdout)
	if err != nil {
		return err
	}
	priceStr, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		fmt.Fprintln(a.out, "Price must be a positive number")
		return nil
	}

	var images []api.Upload
	for {
		path, err := getSimpleText(a.reader, "Image file (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if path == "" {
			break
		}
		content, err := readFile(path)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		images = append(images, api.Upload{FieldName: "images", FileName: path, Content: content})
	}

	p, err := a.client.CreateProduct(ctx, models.NewProduct{
		Name:        name,
		Description: description,
		Category:    category,
		Condition:   condition,
		Price:       price,
		Type:        models.ProductType(typ),
	}, images)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Listed #%d %s (awaiting approval)\n", p.ID, p.Name)
	return nil
}

// MyItems lists the seller's own listings with their approval state.
func (a *App) MyItems(ctx context.Context) error {
	products, err := a.client.Products(ctx, models.ProductAll)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "You have no listings yet.")
		return nil
	}
	for _, p := range products {
		state := "pending"
		if p.Approved {
			state = "approved"
		}
		fmt.Fprintf(a.out, "  #%d  %-30s %8.2f  %s  %s\n", p.ID, p.Name, p.Price, p.Type, state)
	}
	return nil
}

// EditProduct updates the editable fields of one of the seller's listings.
// An empty answer keeps the current value.
func (a *App) EditProduct(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "edit <id>")
	if !ok {
		return nil
	}

	current, err := a.client.Product(ctx, id)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, fmt.Sprintf("Category [%s]", current.Category), os.Stdout)
	if err != nil {
		return err
	}
	condition, err := getSimpleText(a.reader, fmt.Sprintf("Condition [%s]", current.Condition), os.Stdout)
	if err != nil {
		return err
	}

	payload := models.UpdateProductPayload{
		Name:        current.Name,
		Description: current.Description,
		Category:    current.Category,
		Condition:   current.Condition,
	}
	if name != "" {
		payload.Name = name
	}
	if description != "" {
		payload.Description = description
	}
	if category != "" {
		payload.Category = category
	}
	if condition != "" {
		payload.Condition = condition
	}

	updated, err := a.client.UpdateProduct(ctx, id, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated #%d %s\n", updated.ID, updated.Name)
	return nil
}

// RemoveProduct deletes a listing. Sellers remove their own items; admins
// use the same command while moderating.
func (a *App) RemoveProduct(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "rmproduct <id>")
	if !ok {
		return nil
	}

	if err := a.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Removed.")
	return nil
}
