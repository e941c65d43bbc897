package bank

import "carbon-quiz-service/internal/domain"

var questions = []domain.Question{
	{ID: 1, SectionID: "energy-emissions", Category: "Energy Tracking",
		Statement:   "We track our electricity and fuel usage using digital tools.",
		Explanation: "Digital tools include smart meters, energy dashboards, and monitoring software that track energy use in real time."},
	{ID: 2, SectionID: "energy-emissions", Category: "Renewable Energy",
		Statement:   "At least part of our energy mix comes from renewable sources.",
		Explanation: "Renewable energy includes solar, wind, or hydro power instead of fossil fuels."},
	{ID: 3, SectionID: "energy-emissions", Category: "Emissions Measurement",
		Statement:   "We've calculated our Scope 1, 2, and 3 emissions.",
		Explanation: "Scope 1 = direct emissions, Scope 2 = purchased energy, Scope 3 = supply chain & travel."},
	{ID: 4, SectionID: "energy-emissions", Category: "Energy Efficiency",
		Statement:   "We've implemented energy-efficient upgrades (LEDs, HVAC, BMS controls).",
		Explanation: "Upgrades like LED lighting, efficient HVAC systems, and Building Management Systems (BMS) help monitor and control energy use to reduce waste and emissions."},
	{ID: 5, SectionID: "energy-emissions", Category: "Carbon Targets",
		Statement:   "We have carbon reduction targets aligned to science-based goals.",
		Explanation: "Science-based targets follow global standards to help limit climate change."},
	{ID: 6, SectionID: "energy-emissions", Category: "Progress Monitoring",
		Statement:   "We monitor progress toward our emission reduction targets.",
		Explanation: "Reduction targets like cutting energy use, switching to renewables, or lowering travel emissions."},
	{ID: 7, SectionID: "energy-emissions", Category: "Performance Evaluation",
		Statement:   "We regularly evaluate our building or facility energy performance.",
		Explanation: "Evaluating through energy audits, performance benchmarking, or efficiency assessments."},
	{ID: 8, SectionID: "water-treatment", Category: "Water Tracking",
		Statement:   "Our company tracks water use through meters or smart systems.",
		Explanation: "Tracking through water meters, sensors, or smart meter/ monitoring systems."},
	{ID: 9, SectionID: "water-treatment", Category: "Water Reuse",
		Statement:   "We reuse or recycle a portion of our water.",
		Explanation: "Reusing treated wastewater for cleaning, cooling, or irrigation."},
	{ID: 10, SectionID: "water-treatment", Category: "Wastewater Treatment",
		Statement:   "We have a wastewater treatment system that's regularly audited.",
		Explanation: "A wastewater treatment system cleans used water by removing pollutants before it's reused or released safely into the environment."},
	{ID: 11, SectionID: "water-treatment", Category: "Water Reduction Goals",
		Statement:   "We've set goals or initiatives to reduce water consumption.",
		Explanation: "Goals like fixing leaks, installing low-flow fixtures, or reusing greywater."},
	{ID: 12, SectionID: "water-treatment", Category: "Water Risk Management",
		Statement:   "We consider water risks in our operational decisions.",
		Explanation: "Considering risks like water scarcity, flooding, or supply disruptions."},
	{ID: 13, SectionID: "waste-circularity", Category: "Waste Mapping",
		Statement:   "We've mapped out all major waste streams in our operations.",
		Explanation: "Identifying where waste comes from, like production, packaging, or office use."},
	{ID: 14, SectionID: "waste-circularity", Category: "Waste Recycling",
		Statement:   "We recycle or reuse most of our non-hazardous waste.",
		Explanation: "Recycling materials like paper, plastics, or metals instead of sending them to a landfill."},
	{ID: 15, SectionID: "waste-circularity", Category: "Circular Economy",
		Statement:   "We apply circular economy principles (repair, refurbish, reuse).",
		Explanation: "Extending product life by repairing, reusing, or refurbishing items instead of discarding them."},
	{ID: 16, SectionID: "waste-circularity", Category: "Sustainable Packaging",
		Statement:   "Our packaging is sustainable — recyclable, reusable, or compostable.",
		Explanation: "Using eco-friendly packaging materials that reduce plastic waste and pollution."},
	{ID: 17, SectionID: "waste-circularity", Category: "Landfill Diversion",
		Statement:   "We track and report our landfill diversion rate.",
		Explanation: "Measuring how much waste is kept out of landfills through recycling or reuse."},
	{ID: 18, SectionID: "sustainable-procurement", Category: "Supplier Screening",
		Statement:   "We screen suppliers based on their sustainability practices.",
		Explanation: "Checking if suppliers follow eco-friendly practices like waste reduction or fair labor."},
	{ID: 19, SectionID: "sustainable-procurement", Category: "Local Procurement",
		Statement:   "We prefer local or low-carbon suppliers whenever possible.",
		Explanation: "Choosing nearby suppliers or those using cleaner transport to cut emissions."},
	{ID: 20, SectionID: "sustainable-procurement", Category: "ESG Assessment",
		Statement:   "We assess ESG compliance of key vendors and partners.",
		Explanation: "ESG means Environmental, Social, and Governance, a standard for responsible business."},
	{ID: 21, SectionID: "sustainable-procurement", Category: "Life-cycle Assessment",
		Statement:   "We've conducted life-cycle assessments of major materials/products.",
		Explanation: "Life-cycle assessment (LCA) measures environmental impact from production to disposal."},
	{ID: 22, SectionID: "sustainable-procurement", Category: "Supplier Engagement",
		Statement:   "We engage suppliers to help them improve their sustainability.",
		Explanation: "Working with suppliers through training, CPD, or collaboration to reduce their impact."},
	{ID: 23, SectionID: "esg-compliance", Category: "Regulatory Compliance",
		Statement:   "We are fully compliant with all relevant environmental regulations.",
		Explanation: "Following national and local laws on pollution, waste, and emissions."},
	{ID: 24, SectionID: "esg-compliance", Category: "ESG Reporting",
		Statement:   "We publish ESG reports or disclosures (GRI, CDP, SASB, etc.).",
		Explanation: "ESG : Environmental, Social & Governance. Reports follow global standards like GRI : Global Reporting Initiative, CDP : Carbon Disclosure Project, and SASB : Sustainability Accounting Standards Board."},
	{ID: 25, SectionID: "esg-compliance", Category: "Data Integrity",
		Statement:   "We ensure our sustainability claims are backed by real data.",
		Explanation: "All environmental and social statements are supported by verified data, like bills/invoices or audits."},
	{ID: 26, SectionID: "esg-compliance", Category: "Certifications",
		Statement:   "We hold recognized certifications (e.g., ISO 14001, B Corp).",
		Explanation: "ISO 14001 = International Environmental Management Standard; B Corp = Certified Benefit Corporation focused on social and environmental impact."},
	{ID: 27, SectionID: "esg-compliance", Category: "Independent Verification",
		Statement:   "Our data reporting process is independently reviewed or verified.",
		Explanation: "External auditors or third parties check sustainability data for accuracy."},
	{ID: 28, SectionID: "governance-culture", Category: "Strategic Integration",
		Statement:   "Sustainability is integrated into our company's overall strategy.",
		Explanation: "Environmental and social goals are part of the business plan and decisions."},
	{ID: 29, SectionID: "governance-culture", Category: "Leadership Responsibility",
		Statement:   "ESG responsibility sits with senior leadership (C-suite or board).",
		Explanation: "C-suite = top executives like CEO, CFO, etc., who oversee ESG performance."},
	{ID: 30, SectionID: "governance-culture", Category: "Employee Engagement",
		Statement:   "Employees are engaged in sustainability training or activities.",
		Explanation: "Staff take part in eco-awareness sessions, green initiatives, or workshops."},
	{ID: 31, SectionID: "governance-culture", Category: "Inclusive Culture",
		Statement:   "We foster an inclusive and equitable workplace culture.",
		Explanation: "Promoting diversity, fair treatment, and equal opportunities for everyone."},
	{ID: 32, SectionID: "governance-culture", Category: "Team Authority",
		Statement:   "Our sustainability team has decision-making authority.",
		Explanation: "The team can lead and implement sustainability projects across the company."},
	{ID: 33, SectionID: "nature-community", Category: "Impact Assessment",
		Statement:   "We assess how our operations impact land use and ecosystems.",
		Explanation: "Studying how business activities affect soil, water, forests, and wildlife."},
	{ID: 34, SectionID: "nature-community", Category: "Biodiversity Protection",
		Statement:   "We have policies against deforestation or biodiversity loss.",
		Explanation: "Ensuring sourcing or projects do not harm forests, habitats, or species."},
	{ID: 35, SectionID: "nature-community", Category: "Community Support",
		Statement:   "We actively support local communities through CSR initiatives.",
		Explanation: "CSR = Corporate Social Responsibility; community projects like education, health, or clean-up drives."},
	{ID: 36, SectionID: "nature-community", Category: "NGO Partnerships",
		Statement:   "We partner with NGOs or community groups on environmental projects.",
		Explanation: "NGO = Non-Governmental Organization; partnerships help with conservation and awareness."},
	{ID: 37, SectionID: "nature-community", Category: "Conservation Support",
		Statement:   "Our business supports restoration, rewilding, or conservation.",
		Explanation: "Funding or joining projects that restore degraded land and protect nature."},
	{ID: 38, SectionID: "digital-efficiency", Category: "Digital Systems",
		Statement:   "We use digital systems instead of paper/manual records.",
		Explanation: "Online databases and e-documents for record keeping"},
	{ID: 39, SectionID: "digital-efficiency", Category: "Remote Work",
		Statement:   "Our company supports remote work to reduce commuting emissions.",
		Explanation: "Allowing hybrid or work-from-home options to cut travel-related carbon impact."},
	{ID: 40, SectionID: "digital-efficiency", Category: "Green IT",
		Statement:   "We've adopted green IT or low-carbon cloud solutions.",
		Explanation: "Using energy-efficient servers and data centers."},
	{ID: 41, SectionID: "digital-efficiency", Category: "Digital Footprint",
		Statement:   "We've evaluated the carbon footprint of our digital operations.",
		Explanation: "Measuring emissions from computers, data storage, and online systems."},
	{ID: 42, SectionID: "audit-readiness", Category: "Digital Storage",
		Statement:   "We store audit data digitally with minimal paper usage.",
		Explanation: "Keeping sustainability and compliance data online for easy tracking and verification."},
	{ID: 43, SectionID: "audit-readiness", Category: "Clear Reporting",
		Statement:   "Our environmental reports are clear and actionable.",
		Explanation: "Reports show progress with data, insights, and steps for improvement."},
	{ID: 44, SectionID: "audit-readiness", Category: "Audit Readiness",
		Statement:   "Our team is audit-ready — we can quickly share evidence of practices.",
		Explanation: "Documents and proof of sustainability actions are organized for quick review."},
	{ID: 45, SectionID: "audit-readiness", Category: "Savings Estimation",
		Statement:   "We estimate the potential cost and carbon savings of green measures.",
		Explanation: "Calculating financial benefits and emission reductions from eco-friendly actions."},
}
