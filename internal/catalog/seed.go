package catalog

import "hwstore/internal/domain"

// Seed returns a fresh copy of the default catalog used on first run and
// whenever stored data is stale.
func Seed() []domain.Product {
	out := make([]domain.Product, len(seed))
	for i, p := range seed {
		out[i] = p.Clone()
	}
	return out
}

var seed = []domain.Product{
	{
		ID: 1, Name: "Ryzen 7 7800X3D", Brand: "AMD", Category: "CPUs",
		Description:     "8-core gaming processor with 3D V-Cache",
		FullDescription: "Eight Zen 4 cores, 96MB of L3 cache and a 120W TDP on the AM5 socket.",
		Price:           336.75, OriginalPrice: 449.00, Rating: 4.9, Reviews: 2140,
		Image:            "/images/products/ryzen-7800x3d.jpg",
		AdditionalImages: []string{"/images/products/ryzen-7800x3d-box.jpg"},
		Specifications:   map[string]string{"Cores": "8", "Threads": "16", "Socket": "AM5", "Boost Clock": "5.0 GHz"},
		Badge:            "Best Seller", SKU: "CPU-AMD-7800X3D", Warranty: "3 years",
		InStock: true, Featured: true, Discount: 25,
	},
	{
		ID: 2, Name: "Core i7-14700K", Brand: "Intel", Category: "CPUs",
		Description:    "20-core desktop processor for gaming and creation",
		Price:          368.99, OriginalPrice: 409.99, Rating: 4.7, Reviews: 1180,
		Image:          "/images/products/i7-14700k.jpg",
		Specifications: map[string]string{"Cores": "20", "Threads": "28", "Socket": "LGA1700", "Boost Clock": "5.6 GHz"},
		SKU:            "CPU-INT-14700K", Warranty: "3 years",
		InStock: true, Discount: 10,
	},
	{
		ID: 3, Name: "GeForce RTX 4070 Super", Brand: "NVIDIA", Category: "GPUs",
		Description:    "12GB graphics card with DLSS 3",
		Price:          599.99, Rating: 4.8, Reviews: 860,
		Image:          "/images/products/rtx-4070-super.jpg",
		Specifications: map[string]string{"Memory": "12GB GDDR6X", "Boost Clock": "2475 MHz", "TDP": "220W"},
		Badge:          "New", SKU: "GPU-NV-4070S", Warranty: "2 years",
		InStock: true, Featured: true, New: true,
	},
	{
		ID: 4, Name: "Radeon RX 7800 XT", Brand: "AMD", Category: "GPUs",
		Description:    "16GB graphics card for 1440p gaming",
		Price:          399.99, OriginalPrice: 499.99, Rating: 4.6, Reviews: 640,
		Image:          "/images/products/rx-7800xt.jpg",
		Specifications: map[string]string{"Memory": "16GB GDDR6", "Boost Clock": "2430 MHz", "TDP": "263W"},
		Badge:          "Sale", SKU: "GPU-AMD-7800XT", Warranty: "2 years",
		InStock: true, Discount: 20,
	},
	{
		ID: 5, Name: "ROG Strix B650-A Gaming WiFi", Brand: "ASUS", Category: "Motherboards",
		Description:    "ATX AM5 motherboard with PCIe 5.0 and Wi-Fi 6E",
		Price:          229.99, Rating: 4.5, Reviews: 410,
		Image:          "/images/products/strix-b650a.jpg",
		Specifications: map[string]string{"Socket": "AM5", "Form Factor": "ATX", "Memory Slots": "4"},
		SKU:            "MB-ASUS-B650A", Warranty: "3 years",
		InStock: true, Featured: true,
	},
	{
		ID: 6, Name: "MAG Z790 Tomahawk WiFi", Brand: "MSI", Category: "Motherboards",
		Description:    "ATX LGA1700 motherboard with DDR5 support",
		Price:          259.99, Rating: 4.4, Reviews: 295,
		Image:          "/images/products/z790-tomahawk.jpg",
		Specifications: map[string]string{"Socket": "LGA1700", "Form Factor": "ATX", "Memory Slots": "4"},
		SKU:            "MB-MSI-Z790T", Warranty: "3 years",
		InStock: false,
	},
	{
		ID: 7, Name: "Vengeance DDR5 32GB (2x16GB) 6000MHz", Brand: "Corsair", Category: "Memory",
		Description:    "Low-latency DDR5 memory kit with XMP 3.0",
		Price:          102.34, OriginalPrice: 119.00, Rating: 4.7, Reviews: 1520,
		Image:          "/images/products/vengeance-ddr5.jpg",
		Specifications: map[string]string{"Capacity": "32GB", "Speed": "6000MHz", "CAS Latency": "CL30"},
		SKU:            "RAM-COR-32D5", Warranty: "Lifetime",
		InStock: true, Discount: 14,
	},
	{
		ID: 8, Name: "990 PRO 2TB NVMe SSD", Brand: "Samsung", Category: "Storage",
		Description:    "PCIe 4.0 NVMe solid state drive",
		Price:          169.99, Rating: 4.8, Reviews: 2310,
		Image:          "/images/products/990pro-2tb.jpg",
		Specifications: map[string]string{"Capacity": "2TB", "Interface": "PCIe 4.0 x4", "Read": "7450 MB/s"},
		Badge:          "Top Rated", SKU: "SSD-SAM-990P2", Warranty: "5 years",
		InStock: true, Featured: true,
	},
	{
		ID: 9, Name: "Barracuda 4TB HDD", Brand: "Seagate", Category: "Storage",
		Description:    "3.5-inch desktop hard drive for bulk storage",
		Price:          77.43, OriginalPrice: 87.99, Rating: 4.3, Reviews: 980,
		Image:          "/images/products/barracuda-4tb.jpg",
		Specifications: map[string]string{"Capacity": "4TB", "RPM": "5400", "Cache": "256MB"},
		SKU:            "HDD-SEA-4TB", Warranty: "2 years",
		InStock: true, Discount: 12,
	},
	{
		ID: 10, Name: "UltraGear 27GR95QE OLED", Brand: "LG", Category: "Monitors",
		Description:    "27-inch 1440p 240Hz OLED gaming monitor",
		Price:          799.99, Rating: 4.6, Reviews: 220,
		Image:          "/images/products/ultragear-27-oled.jpg",
		Specifications: map[string]string{"Size": "27\"", "Resolution": "2560x1440", "Refresh Rate": "240Hz"},
		Badge:          "New", SKU: "MON-LG-27GR95", Warranty: "2 years",
		InStock: true, New: true,
	},
	{
		ID: 11, Name: "RM850x 850W PSU", Brand: "Corsair", Category: "Power Supplies",
		Description:    "Fully modular 80 PLUS Gold power supply",
		Price:          134.99, Rating: 4.8, Reviews: 1730,
		Image:          "/images/products/rm850x.jpg",
		Specifications: map[string]string{"Wattage": "850W", "Efficiency": "80 PLUS Gold", "Modular": "Full"},
		SKU:            "PSU-COR-RM850X", Warranty: "10 years",
		InStock: true, New: true,
	},
	{
		ID: 12, Name: "G Pro X Superlight 2", Brand: "Logitech", Category: "Peripherals",
		Description:    "Wireless esports gaming mouse",
		Price:          131.19, OriginalPrice: 159.99, Rating: 4.7, Reviews: 890,
		Image:          "/images/products/gpro-superlight2.jpg",
		Specifications: map[string]string{"Weight": "60g", "Sensor": "HERO 2", "Battery": "95 hours"},
		SKU:            "PER-LOG-GPXS2", Warranty: "2 years",
		InStock: true, Featured: true, Discount: 18,
	},
}
