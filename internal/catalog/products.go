package catalog

import "github.com/01moynul/flordelima-golang/internal/models"

func price(v float64) *float64 { return &v }

func percent(v int) *int { return &v }

// storeProducts is the storefront's fixed product list.
var storeProducts = []models.Product{
	{
		ID:            1,
		Name:          "Cesta Romântica com Fotos, Ferrero Rocher e Flor no Balão",
		Code:          "Código: CRFF-AMOR",
		Image:         "/images/item1.jpeg",
		Price:         149.90,
		OriginalPrice: price(189.90),
		Installments:  "4x de R$ 37,48",
		Discount:      percent(21),
		Category:      []string{"cestas", "cestas-romanticas", "datas-comemorativas"},
	},
	{
		ID:            2,
		Name:          "Cesta Romântica com Doces e Foto",
		Code:          "Código: CRFD-MEUS",
		Image:         "/images/item6.jpeg",
		Price:         119.90,
		Installments:  "3x de R$ 39,97",
		Category:      []string{"cestas", "cestas-romanticas", "datas-comemorativas"},
	},
	{
		ID:            3,
		Name:          "Cesta de Doces e Quadro Customizado",
		Code:          "Código: CRUF-AMOR",
		Image:         "/images/item3.jpeg",
		Price:         139.90,
		OriginalPrice: price(179.90),
		Installments:  "4x de R$ 34,98",
		Discount:      percent(22),
		Category:      []string{"cestas", "cestas-romanticas", "datas-comemorativas"},
	},
	{
		ID:            4,
		Name:          "Cesta Romântica de Chocolates",
		Code:          "Código: CRBF-FELIZ",
		Image:         "/images/item4.jpeg",
		Price:         129.90,
		Installments:  "3x de R$ 43,30",
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
	{
		ID:            5,
		Name:          "Cesta com Chocolates e Balão",
		Code:          "Código: BRCB-FELIZ",
		Image:         "/images/item18.jpeg",
		Price:         89.90,
		Installments:  "2x de R$ 44,95",
		Category:      []string{"cestas", "datas-comemorativas"},
	},
	{
		ID:            6,
		Name:          "Cesta Romântica com Ursinho e Cartas",
		Code:          "Código: CRUD-AMOR",
		Image:         "/images/item2.jpeg",
		Price:         129.90,
		Installments:  "3x de R$ 43,30",
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
	{
		ID:            7,
		Name:          "Combo de Rosas com Rafaello, Ferrero Rocher e Ursinho",
		Code:          "Código: BRFR-AMOR",
		Image:         "/images/item19.jpeg",
		Price:         299.90,
		Installments:  "3x de R$ 100,00",
		Category:      []string{"cestas", "mais-vendidos"},
	},
	{
		ID:            8,
		Name:          "Café da Manhã Especial",
		Code:          "Código: CRFB-FELIZ",
		Image:         "/images/item15.jpeg",
		Price:         139.90,
		Installments:  "4x de R$ 34,98",
		Category:      []string{"cestas", "cestas-romanticas", "datas-comemorativas"},
	},
	{
		ID:            9,
		Name:          "Cesta Romântica com Ursinho, Fotos e Chocolates",
		Code:          "Código: CRDU-AMOR",
		Image:         "/images/item8.jpeg",
		Price:         159.90,
		Installments:  "4x de R$ 39,98",
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
	{
		ID:            10,
		Name:          "Buquê de Rafaello com Almofada",
		Code:          "Código: BFRR-AMOR",
		Image:         "/images/item10.jpeg",
		Price:         79.90,
		Installments:  "2x de R$ 34,95",
		Category:      []string{"buques", "mais-vendidos"},
	},
	{
		ID:            11,
		Name:          "Cesta Romântica com Pelúcia Stitch, Balão e Carta",
		Code:          "Código: CRBC-AMOR",
		Image:         "/images/item11.jpeg",
		Price:         139.90,
		OriginalPrice: price(219.90),
		Installments:  "5x de R$ 35,98",
		Discount:      percent(18),
		Category:      []string{"cestas", "cestas-romanticas", "datas-comemorativas"},
	},
	{
		ID:            12,
		Name:          "Cesta Tropical e Caixa de Chocolates",
		Code:          "Código: CRPF-AMOR",
		Image:         "/images/item12.jpeg",
		Price:         199.90,
		Installments:  "5x de R$ 39,98",
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
	{
		ID:            13,
		Name:          "Buquê Elegante",
		Code:          "Código: CRSU-AMOR",
		Image:         "/images/item17.jpeg",
		Price:         169.90,
		Installments:  "4x de R$ 42,48",
		Category:      []string{"cestas", "cestas-romanticas", "mais-vendidos"},
	},
	{
		ID:            14,
		Name:          "Cesta Romântica com Balão",
		Code:          "Código: CRLB-AMOR",
		Image:         "/images/item9.jpeg",
		Price:         109.90,
		Installments:  "3x de R$ 36,63",
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
	{
		ID:            15,
		Name:          "Buquê de Ferrero Rocher",
		Code:          "Código: CRBF-AMOR",
		Image:         "/images/item14.jpeg",
		Price:         79.90,
		Installments:  "2x de R$ 39,95",
		Category:      []string{"buques", "datas-comemorativas"},
	},
	{
		ID:            16,
		Name:          "Buquê de Ferrero Rocher e Flores",
		Code:          "Código: CRFC-FELIZ",
		Image:         "/images/item16.jpeg",
		Price:         109.90,
		Installments:  "2x de R$ 54,95",
		Category:      []string{"buques", "mais-vendidos"},
	},
	{
		ID:            17,
		Name:          "Cesta Romântica Stitch com Led",
		Code:          "Código: CRUB-VERM",
		Image:         "/images/item13.jpeg",
		Price:         80.90,
		Installments:  "2x de R$ 39,97",
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
	{
		ID:            18,
		Name:          "Cesta Romântica com Ursinho e Ferrero Rocher",
		Code:          "Código: BRVF-AMOR",
		Image:         "/images/item7.jpeg",
		Price:         99.90,
		Installments:  "3x de R$ 33,30",
		Category:      []string{"buques", "flores", "datas-comemorativas"},
	},
	{
		ID:            19,
		Name:          "Cesta Romântica com Ursinho e Champanhe",
		Code:          "Código: CRDF-AMOR",
		Image:         "/images/item5.jpeg",
		Price:         139.90,
		OriginalPrice: price(179.90),
		Installments:  "4x de R$ 34,98",
		Discount:      percent(22),
		Category:      []string{"cestas", "cestas-romanticas", "destaques"},
	},
}
